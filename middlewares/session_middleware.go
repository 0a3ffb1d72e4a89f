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

package middlewares

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/config"
	"github.com/l3montree-dev/crossguard/shared"
)

type tokenClaims struct {
	TenantSlug string `json:"tenant_slug"`
	jwt.RegisteredClaims
}

type tokenSession struct {
	userID     string
	tenantSlug string
}

func (s tokenSession) GetUserID() string {
	return s.userID
}

func (s tokenSession) GetTenantSlug() string {
	return s.tenantSlug
}

// NewToken issues a signed bearer token for a user inside a tenant. Used by
// the cli and by tests.
func NewToken(secret string, userID string, tenantSlug string) (string, error) {
	claims := tokenClaims{
		TenantSlug: tenantSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.TokenLifetime())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SessionMiddleware authenticates the bearer token and puts the session into
// the request context. Requests without a valid token never reach a handler.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(401, "no authorization header provided")
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == header {
				return echo.NewHTTPError(401, "invalid authorization header")
			}

			var claims tokenClaims
			token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(config.TokenSecret()), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(401, "invalid token").WithInternal(err)
			}

			if claims.Subject == "" || claims.TenantSlug == "" {
				return echo.NewHTTPError(401, "token is missing subject or tenant")
			}

			shared.SetSession(ctx, tokenSession{
				userID:     claims.Subject,
				tenantSlug: claims.TenantSlug,
			})
			shared.SetTenantSlug(ctx, claims.TenantSlug)

			return next(ctx)
		}
	}
}
