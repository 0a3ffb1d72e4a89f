package models

// IntentFrameworkCrosswalk maps one universal intent to one framework-specific
// control reference. Many crosswalk rows per intent are the normal case - that
// is the whole point of the model.
type IntentFrameworkCrosswalk struct {
	Model
	IntentID         string `json:"intentId" gorm:"type:text;not null;uniqueIndex:idx_crosswalk_edge;index"`
	FrameworkCode    string `json:"frameworkCode" gorm:"type:text;not null;uniqueIndex:idx_crosswalk_edge"`
	ControlReference string `json:"controlReference" gorm:"type:text;not null;uniqueIndex:idx_crosswalk_edge"`
}

func (m IntentFrameworkCrosswalk) TableName() string {
	return "intent_framework_crosswalks"
}
