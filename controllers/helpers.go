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

package controllers

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/shared"
)

// httpError translates the closed error set into the structured envelope the
// HTTP surface speaks. Cross-tenant access is reported as not found on
// purpose - a 403 would leak existence.
func httpError(err error) error {
	switch {
	case shared.IsKind(err, shared.KindNotFound), shared.IsKind(err, shared.KindCrossTenantAccess):
		return echo.NewHTTPError(404, "not found").WithInternal(err)
	case shared.IsKind(err, shared.KindNotEntitled):
		return echo.NewHTTPError(403, "framework is not entitled").WithInternal(err)
	case shared.IsKind(err, shared.KindIntegrityViolation):
		return echo.NewHTTPError(409, "integrity violation").WithInternal(err)
	case shared.IsKind(err, shared.KindExternalUnavailable):
		return echo.NewHTTPError(502, "upstream unavailable").WithInternal(err)
	default:
		return echo.NewHTTPError(500, "internal server error").WithInternal(err)
	}
}
