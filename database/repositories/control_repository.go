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

type controlRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Control]
}

func NewControlRepository(db *gorm.DB) *controlRepository {
	return &controlRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Control](db),
	}
}

func (g *controlRepository) FindByTenantAndFramework(tenantID uuid.UUID, frameworkID uuid.UUID) ([]models.Control, error) {
	var controls []models.Control
	err := g.db.Where("tenant_id = ? AND framework_id = ?", tenantID, frameworkID).Find(&controls).Error
	return controls, err
}

// FindByReference resolves a crosswalk control reference inside a tenant. The
// stored control_id is either the plain reference or the reference followed
// by the internal "#<tenant prefix>" suffix.
func (g *controlRepository) FindByReference(tenantID uuid.UUID, frameworkID uuid.UUID, reference string) (models.Control, error) {
	var control models.Control
	err := g.db.Where(
		"tenant_id = ? AND framework_id = ? AND (control_id = ? OR control_id LIKE ?)",
		tenantID, frameworkID, reference, reference+"#%",
	).First(&control).Error
	return control, err
}
