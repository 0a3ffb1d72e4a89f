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

package commands

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/l3montree-dev/crossguard/database/repositories"
	"github.com/l3montree-dev/crossguard/services"
	"github.com/l3montree-dev/crossguard/shared"
)

func NewCheckCommand() *cobra.Command {
	check := cobra.Command{
		Use:   "check",
		Short: "Report controls classified under more than one canonical process",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				return errors.Wrap(err, "could not connect to database")
			}

			tenantSlug, _ := cmd.Flags().GetString("tenant")
			frameworkCode, _ := cmd.Flags().GetString("framework")

			tenantRepository := repositories.NewTenantRepository(db)
			tenant, err := tenantRepository.ReadBySlug(tenantSlug)
			if err != nil {
				return errors.Wrapf(err, "could not find tenant %s", tenantSlug)
			}

			mapperService := services.NewMapperService(
				repositories.NewFrameworkRepository(db),
				repositories.NewCanonicalProcessRepository(db),
				repositories.NewIntentRepository(db),
				repositories.NewCrosswalkRepository(db),
				repositories.NewControlRepository(db),
			)

			duplicates, err := mapperService.IntegrityCheck(tenant, frameworkCode)
			if err != nil {
				return errors.Wrap(err, "integrity check failed")
			}

			if len(duplicates) == 0 {
				slog.Info("no duplicate classifications found", "tenant", tenantSlug, "framework", frameworkCode)
				return nil
			}

			for _, duplicate := range duplicates {
				slog.Warn("control classified under multiple processes",
					"controlID", duplicate.PublicID,
					"processes", duplicate.Processes)
			}
			return nil
		},
	}

	check.Flags().String("tenant", "", "tenant slug to check")
	check.Flags().String("framework", "", "framework code to check")
	check.MarkFlagRequired("tenant")    // nolint
	check.MarkFlagRequired("framework") // nolint
	return &check
}
