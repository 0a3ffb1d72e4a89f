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
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
)

type tenantFrameworkRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.TenantFramework]
}

func NewTenantFrameworkRepository(db *gorm.DB) *tenantFrameworkRepository {
	return &tenantFrameworkRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.TenantFramework](db),
	}
}

func (g *tenantFrameworkRepository) FindEdge(tenantID uuid.UUID, frameworkID uuid.UUID) (models.TenantFramework, error) {
	var edge models.TenantFramework
	err := g.db.Preload("Framework").
		Where("tenant_id = ? AND framework_id = ?", tenantID, frameworkID).
		First(&edge).Error
	return edge, err
}

func (g *tenantFrameworkRepository) FindByTenant(tenantID uuid.UUID) ([]models.TenantFramework, error) {
	var edges []models.TenantFramework
	err := g.db.Preload("Framework").Where("tenant_id = ?", tenantID).Find(&edges).Error
	return edges, err
}
