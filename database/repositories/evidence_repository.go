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

type evidenceRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Evidence]
}

func NewEvidenceRepository(db *gorm.DB) *evidenceRepository {
	return &evidenceRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Evidence](db),
	}
}

func (g *evidenceRepository) FindByControl(controlID uuid.UUID) ([]models.Evidence, error) {
	var evidence []models.Evidence
	err := g.db.Where("control_id = ?", controlID).Find(&evidence).Error
	return evidence, err
}

// FindClone looks up a propagated copy by its natural key. The gravity
// fan-out is idempotent because this lookup runs before every insert.
// The file path is part of the key - two artifacts sharing a title are
// still distinct evidence.
func (g *evidenceRepository) FindClone(controlID uuid.UUID, title string, filePath string, masterIntentID string) (models.Evidence, error) {
	var evidence models.Evidence
	err := g.db.Where(
		"control_id = ? AND title = ? AND file_path = ? AND master_intent_id = ?",
		controlID, title, filePath, masterIntentID,
	).First(&evidence).Error
	return evidence, err
}

func (g *evidenceRepository) FindGravityClones(tenantID uuid.UUID, masterIntentID string, excludeID uuid.UUID) ([]models.Evidence, error) {
	var evidence []models.Evidence
	err := g.db.Where(
		"tenant_id = ? AND master_intent_id = ? AND validation_source = ? AND id != ?",
		tenantID, masterIntentID, models.ValidationSourceAutomatedGravity, excludeID,
	).Find(&evidence).Error
	return evidence, err
}
