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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package controllers

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/shared"
)

type EntitlementController struct {
	entitlementService shared.EntitlementService
}

func NewEntitlementController(entitlementService shared.EntitlementService) *EntitlementController {
	return &EntitlementController{
		entitlementService: entitlementService,
	}
}

func (controller *EntitlementController) List(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	entitlements, err := controller.entitlementService.Entitlements(tenant)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, dtos.EntitlementListDTO{Frameworks: entitlements})
}

func (controller *EntitlementController) Toggle(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	// the slug in the path must match the authenticated tenant
	slug := shared.GetParam(ctx, "tenantSlug")
	if slug != tenant.Slug {
		return httpError(shared.NewError(shared.KindCrossTenantAccess, "tenant slug does not match the authenticated tenant"))
	}

	var req dtos.ToggleFrameworksRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	entitlements, err := controller.entitlementService.ToggleFrameworks(tenant, req.FrameworkIDs)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, dtos.EntitlementListDTO{Frameworks: entitlements})
}
