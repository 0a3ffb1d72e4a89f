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

package api

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/l3montree-dev/crossguard/middlewares"
)

// StartedAt is used by the info endpoint to report process uptime.
var StartedAt = time.Now()

// Server wraps the echo instance so routers can register their groups on it.
type Server struct {
	Echo *echo.Echo
}

func listenAddr() string {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		return v
	}
	return ":8080"
}

// NewServer creates the echo instance with all global middlewares applied and
// binds its lifetime to the fx application.
func NewServer(lifecycle fx.Lifecycle) Server {
	e := middlewares.Server()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := listenAddr()
			go func() {
				slog.Info("starting server", "addr", addr)
				if err := e.Start(addr); err != nil {
					slog.Info("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
