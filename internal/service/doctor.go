package service

import (
	"context"

	"medref/internal/model"
	"medref/internal/repository"
)

// DoctorService defines the use cases for managing doctors.
type DoctorService interface {
	// Register validates the doctor and stores it, returning the record with
	// its database-assigned id. Constraint violations come back as
	// *model.ValidationError.
	Register(ctx context.Context, doc *model.Doctor) (*model.Doctor, error)

	// Remove deletes a doctor by id. Removing an absent id is not an error.
	Remove(ctx context.Context, id int64) error
}

type doctorService struct {
	repo repository.DoctorRepository
}

// NewDoctorService constructs a new DoctorService.
func NewDoctorService(repo repository.DoctorRepository) DoctorService {
	return &doctorService{repo: repo}
}

// Register runs the explicit pre-insert validation, then persists.
func (s *doctorService) Register(ctx context.Context, doc *model.Doctor) (*model.Doctor, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, doc)
}

func (s *doctorService) Remove(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
