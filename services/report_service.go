package services

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/shared"
)

// ReportService pivots evaluator output two ways: per intent ("one intent,
// many frameworks satisfied") and per canonical process domain.
type ReportService struct {
	intentRepository    shared.IntentRepository
	crosswalkRepository shared.CrosswalkRepository
	resultRepository    shared.ComplianceResultRepository
}

func NewReportService(intentRepository shared.IntentRepository, crosswalkRepository shared.CrosswalkRepository, resultRepository shared.ComplianceResultRepository) *ReportService {
	return &ReportService{
		intentRepository:    intentRepository,
		crosswalkRepository: crosswalkRepository,
		resultRepository:    resultRepository,
	}
}

func (service *ReportService) UnifiedControlsEvidence(tenant models.Tenant) (dtos.UnifiedControlsEvidenceReportDTO, error) {
	var report dtos.UnifiedControlsEvidenceReportDTO

	intents, err := service.intentRepository.All()
	if err != nil {
		return report, err
	}

	standards := map[string]struct{}{}
	completed := 0

	for _, intent := range intents {
		crosswalks, err := service.crosswalkRepository.FindByIntentID(intent.IntentID)
		if err != nil {
			return report, err
		}

		impact := map[string][]string{}
		for _, crosswalk := range crosswalks {
			impact[crosswalk.FrameworkCode] = append(impact[crosswalk.FrameworkCode], crosswalk.ControlReference)
			standards[crosswalk.FrameworkCode] = struct{}{}
		}
		for code := range impact {
			sort.Slice(impact[code], func(i, j int) bool {
				return models.ControlIDLess(impact[code][i], impact[code][j])
			})
		}

		if intent.Status == models.IntentStatusCompleted {
			completed++
		}

		report.Intents = append(report.Intents, dtos.IntentImpactDTO{
			IntentID:    intent.IntentID,
			Description: intent.Description,
			Category:    intent.Category,
			Status:      string(intent.Status),
			Impact:      impact,
			ImpactCount: len(crosswalks),
		})
	}

	sort.Slice(report.Intents, func(i, j int) bool {
		return report.Intents[i].IntentID < report.Intents[j].IntentID
	})

	covered := make([]string, 0, len(standards))
	for code := range standards {
		covered = append(covered, code)
	}
	sort.Strings(covered)

	report.Summary = dtos.UnifiedReportSummaryDTO{
		TotalIntents:     len(intents),
		CompletedIntents: completed,
		StandardsCovered: covered,
	}

	return report, nil
}

func (service *ReportService) ComplianceSummary(tenant models.Tenant, frameworkID *uuid.UUID) ([]dtos.DomainSummaryDTO, error) {
	results, err := service.resultRepository.FindByTenant(tenant.InternalTenantID)
	if err != nil {
		return nil, err
	}

	stats := map[string]*dtos.DomainStatsDTO{}
	for _, result := range results {
		if frameworkID != nil && result.Control.FrameworkID != *frameworkID {
			continue
		}

		domain := result.Control.Domain
		if domain == "" {
			domain = "General"
		}

		s, ok := stats[domain]
		if !ok {
			s = &dtos.DomainStatsDTO{}
			stats[domain] = s
		}

		s.Total++
		switch result.Status {
		case models.ComplianceStatusPass:
			s.Pass++
		case models.ComplianceStatusFail:
			s.Fail++
		}
	}

	summaries := make([]dtos.DomainSummaryDTO, 0, len(stats))
	for domain, s := range stats {
		percentage := 0.0
		if s.Total > 0 {
			percentage = math.Round(float64(s.Pass)/float64(s.Total)*1000) / 10
		}

		status := string(models.ComplianceStatusFail)
		if s.Total > 0 && s.Pass == s.Total {
			status = string(models.ComplianceStatusPass)
		}

		summaries = append(summaries, dtos.DomainSummaryDTO{
			Domain:     domain,
			Stats:      *s,
			Percentage: percentage,
			Status:     status,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Domain < summaries[j].Domain
	})

	return summaries, nil
}
