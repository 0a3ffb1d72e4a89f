package controllers

import (
	"go.uber.org/fx"
)

// ControllerModule provides all controller constructors
var ControllerModule = fx.Options(
	fx.Provide(NewCatalogController),
	fx.Provide(NewEntitlementController),
	fx.Provide(NewProcessController),
	fx.Provide(NewEvidenceController),
	fx.Provide(NewIntentController),
	fx.Provide(NewReportController),
)
