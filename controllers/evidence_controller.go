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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/shared"
	"github.com/l3montree-dev/crossguard/transformer"
)

type EvidenceController struct {
	evidenceRepository shared.EvidenceRepository
	controlRepository  shared.ControlRepository
	gravityService     shared.GravityService
}

func NewEvidenceController(evidenceRepository shared.EvidenceRepository, controlRepository shared.ControlRepository, gravityService shared.GravityService) *EvidenceController {
	return &EvidenceController{
		evidenceRepository: evidenceRepository,
		controlRepository:  controlRepository,
		gravityService:     gravityService,
	}
}

func (controller *EvidenceController) Create(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	var req dtos.EvidenceCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	control, err := controller.controlRepository.Read(req.ControlID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find control").WithInternal(err)
	}
	// cross-tenant writes are rejected as not found
	if control.TenantID != tenant.InternalTenantID {
		return echo.NewHTTPError(404, "could not find control")
	}

	evidence := transformer.EvidenceCreateRequestToModel(req)
	evidence.TenantID = tenant.InternalTenantID

	if err := controller.evidenceRepository.Transaction(func(tx *gorm.DB) error {
		return controller.evidenceRepository.Create(tx, &evidence)
	}); err != nil {
		return echo.NewHTTPError(500, "could not create evidence").WithInternal(err)
	}

	resp := transformer.EvidenceDTOFromModel(evidence)

	// gravity runs in its own transaction after the evidence is committed
	if evidence.MasterIntentID != nil {
		propagated, err := controller.gravityService.Propagate(evidence.ID)
		if err != nil {
			return httpError(err)
		}
		resp.PropagatedTo = propagated
	}

	return ctx.JSON(201, resp)
}

func (controller *EvidenceController) Delete(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	id, err := uuid.Parse(shared.GetParam(ctx, "id"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid evidence id")
	}

	if err := controller.gravityService.RemoveWithClones(tenant, id); err != nil {
		return httpError(err)
	}

	return ctx.NoContent(200)
}
