package daemons

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/monitoring"
	"github.com/l3montree-dev/crossguard/shared"
	"github.com/l3montree-dev/crossguard/utils"
)

func getLastRunTime(configService shared.ConfigService, key string) (time.Time, error) {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	err := configService.GetJSONConfig(key, &lastRun)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("could not get last run time", "err", err, "key", key)
		return time.Time{}, err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Info("no last run time found. Setting to 0", "key", key)
		return time.Time{}, nil
	}

	return lastRun.Time, nil
}

func shouldRun(configService shared.ConfigService, key string, interval time.Duration) bool {
	lastTime, err := getLastRunTime(configService, key)
	if err != nil {
		return false
	}

	return time.Since(lastTime) > interval
}

func markRun(configService shared.ConfigService, key string) error {
	return configService.SetJSONConfig(key, struct {
		Time time.Time `json:"time"`
	}{
		Time: time.Now(),
	})
}

func (runner *DaemonRunner) runDaemons() {
	daemonStart := time.Now()
	slog.Info("starting background jobs", "time", time.Now())

	if shouldRun(runner.configService, "crosswalk.integrityCheck", 12*time.Hour) {
		start := time.Now()
		if err := runner.runIntegrityCheck(); err != nil {
			monitoring.Alert("failed to run integrity check", err)
			// mark anyway, a broken tenant must not wedge the whole loop
		}
		if err := markRun(runner.configService, "crosswalk.integrityCheck"); err != nil {
			slog.Error("could not mark integrityCheck as run", "err", err)
		}
		slog.Info("integrity check finished", "duration", time.Since(start))
	}

	slog.Info("background jobs finished", "duration", time.Since(daemonStart))
}

// runIntegrityCheck walks every active tenant and every framework it is
// entitled to and logs controls classified under more than one process.
func (runner *DaemonRunner) runIntegrityCheck() error {
	tenants, err := runner.tenantRepository.ActiveTenants()
	if err != nil {
		return errors.Wrap(err, "could not list active tenants")
	}

	for _, tenant := range tenants {
		edges, err := runner.tenantFrameworkRepository.FindByTenant(tenant.InternalTenantID)
		if err != nil {
			slog.Error("could not list tenant frameworks", "tenant", tenant.Slug, "err", err)
			continue
		}

		activeEdges := utils.Filter(edges, func(edge models.TenantFramework) bool {
			return edge.IsActive
		})

		for _, edge := range activeEdges {
			duplicates, err := runner.mapperService.IntegrityCheck(tenant, edge.Framework.Code)
			if err != nil {
				slog.Error("integrity check failed", "tenant", tenant.Slug, "framework", edge.Framework.Code, "err", err)
				continue
			}

			for _, duplicate := range duplicates {
				slog.Warn("control classified under multiple processes",
					"tenant", tenant.Slug,
					"framework", edge.Framework.Code,
					"controlID", duplicate.ControlID,
					"processes", duplicate.Processes)
			}
		}
	}

	return nil
}
