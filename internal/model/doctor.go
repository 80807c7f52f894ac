package model

import "time"

// Doctor represents a registered doctor.
// This is a pure domain model with no database-specific dependencies; the
// validate tags are evaluated only by the explicit Validate call before
// insert, never by the persistence layer.
type Doctor struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name" validate:"required,min=3"`
	City        string     `json:"city" validate:"required,max=20"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber string     `json:"phone_number" validate:"required,min=10"`
	Speciality  Speciality `json:"speciality" validate:"required,speciality"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Validate checks the doctor's field constraints.
// Returns a *ValidationError naming the offending fields, or nil.
func (d *Doctor) Validate() error {
	return runValidation(d)
}
