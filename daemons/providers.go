// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/l3montree-dev/crossguard/monitoring"
	"github.com/l3montree-dev/crossguard/shared"
)

// DaemonRunner drains the intent impact queue and runs the periodic
// background jobs.
type DaemonRunner struct {
	queue                     *IntentImpactQueue
	configService             shared.ConfigService
	evaluatorService          shared.EvaluatorService
	mapperService             shared.MapperService
	tenantRepository          shared.TenantRepository
	tenantFrameworkRepository shared.TenantFrameworkRepository
}

func NewDaemonRunner(
	queue *IntentImpactQueue,
	configService shared.ConfigService,
	evaluatorService shared.EvaluatorService,
	mapperService shared.MapperService,
	tenantRepository shared.TenantRepository,
	tenantFrameworkRepository shared.TenantFrameworkRepository,
) *DaemonRunner {
	return &DaemonRunner{
		queue:                     queue,
		configService:             configService,
		evaluatorService:          evaluatorService,
		mapperService:             mapperService,
		tenantRepository:          tenantRepository,
		tenantFrameworkRepository: tenantFrameworkRepository,
	}
}

// Start launches the queue worker and the periodic job loop.
func (runner *DaemonRunner) Start() {
	go func() {
		for intentID := range runner.queue.tasks {
			start := time.Now()
			if err := runner.evaluatorService.CalculateIntentImpact(intentID); err != nil {
				monitoring.Alert("could not calculate intent impact", err)
				continue
			}
			slog.Info("intent impact calculated", "intentID", intentID, "duration", time.Since(start))
		}
	}()

	go func() {
		runner.runDaemons()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			runner.runDaemons()
		}
	}()
}

var Module = fx.Module("daemons",
	fx.Provide(NewIntentImpactQueue),
	// the evaluator depends on the interface, the runner on the concrete
	// queue. Both must see the same instance.
	fx.Provide(func(queue *IntentImpactQueue) shared.IntentImpactQueue { return queue }),
	fx.Provide(NewDaemonRunner),
)
