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

package repositories

import (
	"github.com/l3montree-dev/crossguard/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewFrameworkRepository, fx.As(new(shared.FrameworkRepository)))),
	fx.Provide(fx.Annotate(NewCanonicalProcessRepository, fx.As(new(shared.CanonicalProcessRepository)))),
	fx.Provide(fx.Annotate(NewControlRepository, fx.As(new(shared.ControlRepository)))),
	fx.Provide(fx.Annotate(NewTenantRepository, fx.As(new(shared.TenantRepository)))),
	fx.Provide(fx.Annotate(NewTenantFrameworkRepository, fx.As(new(shared.TenantFrameworkRepository)))),
	fx.Provide(fx.Annotate(NewIntentRepository, fx.As(new(shared.IntentRepository)))),
	fx.Provide(fx.Annotate(NewCrosswalkRepository, fx.As(new(shared.CrosswalkRepository)))),
	fx.Provide(fx.Annotate(NewEvidenceRepository, fx.As(new(shared.EvidenceRepository)))),
	fx.Provide(fx.Annotate(NewComplianceResultRepository, fx.As(new(shared.ComplianceResultRepository)))),
	fx.Provide(fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository)))),
)
