package models

// Framework is a compliance standard (ISO 27001, SOC 2, ...) with a catalog of
// controls. Frameworks are seeded offline and never deleted while referenced.
type Framework struct {
	Model
	Code    string `json:"code" gorm:"type:text;unique;not null;index"`
	Name    string `json:"name" gorm:"type:text;not null"`
	Version string `json:"version" gorm:"type:text"`
}

func (m Framework) TableName() string {
	return "frameworks"
}
