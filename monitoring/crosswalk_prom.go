// Copyright 2025 l3montree GmbH
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GravityClonesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crossguard_gravity_clones_created_total",
	Help: "Number of evidence rows cloned by the gravity fan-out",
})

var IntentImpactRuns = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crossguard_intent_impact_runs_total",
	Help: "Number of intent impact calculations executed",
})

var IntentImpactDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "crossguard_intent_impact_duration_seconds",
	Help:    "Duration of a single intent impact calculation",
	Buckets: prometheus.DefBuckets,
})

var ComplianceResultsUpserted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crossguard_compliance_results_upserted_total",
	Help: "Number of compliance result upserts performed by the evaluator",
})

var IntegrityCheckFindings = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "crossguard_integrity_check_findings",
	Help: "Controls classified under more than one canonical process at the last check",
})
