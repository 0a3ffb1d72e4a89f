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

package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/shared"
)

// TenantMiddleware resolves the tenant named inside the bearer token and puts
// it into the request context. An unknown or inactive tenant is treated like
// a bad token.
func TenantMiddleware(tenantRepository shared.TenantRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			slug, err := shared.GetTenantSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(401, "no tenant in session")
			}

			tenant, err := tenantRepository.ReadBySlug(slug)
			if err != nil {
				return echo.NewHTTPError(401, "could not resolve tenant").WithInternal(err)
			}

			if !tenant.IsActive {
				return echo.NewHTTPError(401, "tenant is deactivated")
			}

			shared.SetTenant(ctx, tenant)

			return next(ctx)
		}
	}
}
