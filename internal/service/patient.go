package service

import (
	"context"
	"database/sql"
	"errors"

	"medref/internal/model"
	"medref/internal/repository"
)

// PatientService defines the use cases for managing patients.
type PatientService interface {
	// Register validates the patient and stores it, returning the record with
	// its database-assigned id.
	Register(ctx context.Context, p *model.Patient) (*model.Patient, error)

	// Get returns a patient by id, or ErrPatientNotFound.
	Get(ctx context.Context, id int64) (*model.Patient, error)

	// Remove deletes a patient by id. Removing an absent id is not an error.
	Remove(ctx context.Context, id int64) error
}

type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService constructs a new PatientService.
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

// Register runs the explicit pre-insert validation, then persists.
func (s *patientService) Register(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

// Get returns a patient by id. Absence is an explicit, checked case.
func (s *patientService) Get(ctx context.Context, id int64) (*model.Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) Remove(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
