package dtos

import "github.com/google/uuid"

// ProcessWithControlsDTO is the grouped view the UI consumes: one canonical
// process with every control of the requested framework that belongs to it.
type ProcessWithControlsDTO struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Controls    []ControlDTO `json:"controls"`
}

// DuplicateClassificationDTO reports a control reached from more than one
// canonical process - a seeding bug the integrity check surfaces.
type DuplicateClassificationDTO struct {
	ControlID uuid.UUID `json:"controlId"`
	PublicID  string    `json:"publicId"`
	Processes []string  `json:"processes"`
}
