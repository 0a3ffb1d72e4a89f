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
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/shared"
	"github.com/l3montree-dev/crossguard/transformer"
)

type IntentController struct {
	intentRepository shared.IntentRepository
	evaluatorService shared.EvaluatorService
}

func NewIntentController(intentRepository shared.IntentRepository, evaluatorService shared.EvaluatorService) *IntentController {
	return &IntentController{
		intentRepository: intentRepository,
		evaluatorService: evaluatorService,
	}
}

func (controller *IntentController) List(ctx shared.Context) error {
	intents, err := controller.intentRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list intents").WithInternal(err)
	}

	return ctx.JSON(200, transformer.IntentDTOsFromModels(intents))
}

func (controller *IntentController) Read(ctx shared.Context) error {
	intent, err := controller.intentRepository.ReadByIntentID(shared.GetParam(ctx, "intentID"))
	if err != nil {
		return echo.NewHTTPError(404, "could not find intent").WithInternal(err)
	}

	return ctx.JSON(200, transformer.IntentDTOFromModel(intent))
}

func (controller *IntentController) Patch(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	var req dtos.IntentPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	intent, err := controller.evaluatorService.EvaluateIntent(shared.GetParam(ctx, "intentID"), models.IntentStatus(req.Status), session.GetUserID())
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.IntentDTOFromModel(intent))
}
