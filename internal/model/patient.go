package model

import "time"

// Patient represents a registered patient. The symptom implies a speciality
// via the static table in speciality.go; the speciality itself is never
// stored on the record.
type Patient struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,min=3"`
	City        string    `json:"city" validate:"required,max=20"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required,min=10"`
	Symptom     Symptom   `json:"symptom" validate:"required,symptom"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the patient's field constraints.
// Returns a *ValidationError naming the offending fields, or nil.
func (p *Patient) Validate() error {
	return runValidation(p)
}
