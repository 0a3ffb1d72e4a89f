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

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/database/repositories"
	"github.com/l3montree-dev/crossguard/shared"
)

func NewTenantCommand() *cobra.Command {
	tenant := cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants",
	}

	tenant.AddCommand(newTenantCreateCommand())
	return &tenant
}

func newTenantCreateCommand() *cobra.Command {
	create := cobra.Command{
		Use:   "create <name>",
		Short: "Create a tenant. The slug is derived from the name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				return errors.Wrap(err, "could not connect to database")
			}

			tenantRepository := repositories.NewTenantRepository(db)

			tenant := models.Tenant{
				Name: args[0],
			}
			if err := tenantRepository.Create(nil, &tenant); err != nil {
				return errors.Wrap(err, "could not create tenant")
			}

			slog.Info("created tenant", "slug", tenant.Slug, "internalTenantID", tenant.InternalTenantID)
			return nil
		},
	}

	return &create
}
