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

	"github.com/l3montree-dev/crossguard/middlewares"
	"github.com/l3montree-dev/crossguard/shared"
)

type SessionRouter struct {
	*echo.Group
}

func whoami(ctx echo.Context) error {
	session := shared.GetSession(ctx)
	return ctx.JSON(200, map[string]string{
		"userID":     session.GetUserID(),
		"tenantSlug": session.GetTenantSlug(),
	})
}

// NewSessionRouter groups everything behind the bearer token. The tenant
// middleware resolves the tenant once so handlers can rely on it.
func NewSessionRouter(
	apiV1Router APIV1Router,
	tenantRepository shared.TenantRepository,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(),
		middlewares.TenantMiddleware(tenantRepository),
	)

	sessionRouter.GET("/whoami/", whoami)

	return SessionRouter{
		Group: sessionRouter,
	}
}
