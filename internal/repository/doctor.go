package repository

import (
	"context"

	"medref/internal/model"
)

// DoctorRepository defines data access for doctors using SQL queries only.
// No business logic here — strictly persistence operations.
type DoctorRepository interface {
	// Create inserts a new doctor row. The ID and CreatedAt are assigned by
	// the database; the returned record carries them.
	Create(ctx context.Context, doc *model.Doctor) (*model.Doctor, error)

	// FindByCityAndSpeciality returns all doctors matching the given city
	// and speciality exactly, in id order. The slice may be empty.
	FindByCityAndSpeciality(ctx context.Context, city string, speciality model.Speciality) ([]model.Doctor, error)

	// Delete removes a doctor by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
