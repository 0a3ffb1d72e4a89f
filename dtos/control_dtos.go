package dtos

import (
	"time"

	"github.com/google/uuid"
)

// ControlDTO is the public shape of a control. ControlID always carries the
// original unsuffixed identifier - internal tenant scoping never leaves the
// API.
type ControlDTO struct {
	ID               uuid.UUID `json:"id"`
	ControlID        string    `json:"controlId"`
	FrameworkCode    string    `json:"frameworkCode"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	Category         string    `json:"category"`
	Domain           string    `json:"domain"`
	IsApplicable     bool      `json:"isApplicable"`
	Classification   string    `json:"classification"`
	AutomationStatus string    `json:"automationStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}
