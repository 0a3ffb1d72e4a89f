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
	"github.com/l3montree-dev/crossguard/transformer"
)

type CatalogController struct {
	catalogService shared.CatalogService
}

func NewCatalogController(catalogService shared.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (controller *CatalogController) ListFrameworks(ctx shared.Context) error {
	frameworks, err := controller.catalogService.ListFrameworks()
	if err != nil {
		return echo.NewHTTPError(500, "could not list frameworks").WithInternal(err)
	}

	return ctx.JSON(200, frameworks)
}

func (controller *CatalogController) ListProcesses(ctx shared.Context) error {
	var frameworkCode *string
	if code := shared.GetFrameworkCode(ctx); code != "" {
		frameworkCode = shared.Ptr(code)
	}

	processes, err := controller.catalogService.CanonicalProcesses(frameworkCode)
	if err != nil {
		return echo.NewHTTPError(500, "could not list processes").WithInternal(err)
	}

	return ctx.JSON(200, processes)
}

func (controller *CatalogController) ListControls(ctx shared.Context) error {
	frameworkCode := shared.GetFrameworkCode(ctx)
	if frameworkCode == "" {
		return echo.NewHTTPError(400, "framework_code query parameter is required")
	}

	controls, err := controller.catalogService.ListControls(frameworkCode)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.ControlDTOsFromModels(controls, frameworkCode))
}
