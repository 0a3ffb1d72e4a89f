package services

import (
	"github.com/l3montree-dev/crossguard/shared"
	"go.uber.org/fx"
)

// ServiceModule provides all service-layer constructors
var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewCatalogService, fx.As(new(shared.CatalogService)))),
	fx.Provide(fx.Annotate(NewEntitlementService, fx.As(new(shared.EntitlementService)))),
	fx.Provide(fx.Annotate(NewGravityService, fx.As(new(shared.GravityService)))),
	fx.Provide(fx.Annotate(NewEvaluatorService, fx.As(new(shared.EvaluatorService)))),
	fx.Provide(fx.Annotate(NewMapperService, fx.As(new(shared.MapperService)))),
	fx.Provide(fx.Annotate(NewReportService, fx.As(new(shared.ReportService)))),
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
)
