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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/shared"
)

type ReportController struct {
	reportService shared.ReportService
}

func NewReportController(reportService shared.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

func (controller *ReportController) UnifiedControlsEvidence(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	report, err := controller.reportService.UnifiedControlsEvidence(tenant)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, report)
}

func (controller *ReportController) ComplianceSummary(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	var frameworkID *uuid.UUID
	if raw := ctx.QueryParam("framework_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(400, "invalid framework_id")
		}
		frameworkID = &id
	}

	summary, err := controller.reportService.ComplianceSummary(tenant, frameworkID)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, summary)
}
