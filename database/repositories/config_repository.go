package repositories

import (
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
)

type configRepository struct {
	*GormRepository[string, models.Config]
}

func NewConfigRepository(db *gorm.DB) *configRepository {
	return &configRepository{
		GormRepository: newGormRepository[string, models.Config](db),
	}
}
