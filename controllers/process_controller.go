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
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/shared"
)

type ProcessController struct {
	mapperService shared.MapperService
}

func NewProcessController(mapperService shared.MapperService) *ProcessController {
	return &ProcessController{
		mapperService: mapperService,
	}
}

func (controller *ProcessController) List(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	frameworkCode := shared.GetFrameworkCode(ctx)
	if frameworkCode == "" {
		return echo.NewHTTPError(400, "framework_code query parameter is required")
	}

	processes, err := controller.mapperService.ProcessesWithControls(tenant, frameworkCode)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, processes)
}

func (controller *ProcessController) IntegrityCheck(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	frameworkCode := shared.GetFrameworkCode(ctx)
	if frameworkCode == "" {
		return echo.NewHTTPError(400, "framework_code query parameter is required")
	}

	findings, err := controller.mapperService.IntegrityCheck(tenant, frameworkCode)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, findings)
}
