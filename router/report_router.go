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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/controllers"
)

type ReportRouter struct {
	*echo.Group
}

func NewReportRouter(
	sessionGroup SessionRouter,
	reportController *controllers.ReportController,
) ReportRouter {
	reportRouter := sessionGroup.Group.Group("/reports")
	reportRouter.GET("/unified-controls-evidence/", reportController.UnifiedControlsEvidence)

	complianceRouter := sessionGroup.Group.Group("/compliance")
	complianceRouter.GET("/summary/", reportController.ComplianceSummary)

	return ReportRouter{
		Group: reportRouter,
	}
}
