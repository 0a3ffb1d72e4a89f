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

type complianceResultRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ComplianceResult]
}

func NewComplianceResultRepository(db *gorm.DB) *complianceResultRepository {
	return &complianceResultRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ComplianceResult](db),
	}
}

func (g *complianceResultRepository) FindByTenantAndControl(tenantID uuid.UUID, controlID uuid.UUID) (models.ComplianceResult, error) {
	var result models.ComplianceResult
	err := g.db.Where("tenant_id = ? AND control_id = ?", tenantID, controlID).First(&result).Error
	return result, err
}

func (g *complianceResultRepository) FindByTenant(tenantID uuid.UUID) ([]models.ComplianceResult, error) {
	var results []models.ComplianceResult
	err := g.db.Preload("Control").Where("tenant_id = ?", tenantID).Find(&results).Error
	return results, err
}
