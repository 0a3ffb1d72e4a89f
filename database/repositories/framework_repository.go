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

type frameworkRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Framework]
}

func NewFrameworkRepository(db *gorm.DB) *frameworkRepository {
	return &frameworkRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Framework](db),
	}
}

func (g *frameworkRepository) ReadByCode(code string) (models.Framework, error) {
	var framework models.Framework
	err := g.db.Where("code = ?", code).First(&framework).Error
	return framework, err
}
