package shared

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/crossguard/database/models"
)

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		v = ctx.QueryParam(param)
	}
	return SanitizeParam(v)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetTenant(ctx Context, tenant models.Tenant) {
	ctx.Set("tenant", tenant)
}

// GetTenant returns the authenticated tenant. It panics when no tenant
// middleware ran before.
func GetTenant(ctx Context) models.Tenant {
	return ctx.Get("tenant").(models.Tenant)
}

func GetTenantSlug(ctx Context) (string, error) {
	slug, ok := ctx.Get("tenantSlug").(string)
	if !ok {
		return "", echo.NewHTTPError(500, "could not get tenant slug")
	}
	return slug, nil
}

func SetTenantSlug(ctx Context, slug string) {
	ctx.Set("tenantSlug", slug)
}

// GetFrameworkCode reads the framework_code query parameter.
func GetFrameworkCode(ctx Context) string {
	return SanitizeParam(ctx.QueryParam("framework_code"))
}
