package repository

import (
	"context"

	"medref/internal/model"
)

// PatientRepository defines data access for patients.
type PatientRepository interface {
	// Create inserts a new patient row. The ID and CreatedAt are assigned by
	// the database; the returned record carries them.
	Create(ctx context.Context, p *model.Patient) (*model.Patient, error)

	// FindByID returns a patient by its ID. Absence surfaces as sql.ErrNoRows,
	// never as a nil record with a nil error.
	FindByID(ctx context.Context, id int64) (*model.Patient, error)

	// Delete removes a patient by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
