package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medref/internal/model"
	"medref/internal/repository"
)

// SuggestionService matches a patient to doctors in the patient's city whose
// speciality covers the patient's symptom.
type SuggestionService interface {
	// Suggest returns all doctors matching the patient's city and the
	// speciality implied by the patient's symptom, in storage order.
	// Fails with ErrPatientNotFound, ErrUnsupportedRegion, or
	// ErrNoDoctorAvailable.
	Suggest(ctx context.Context, patientID int64) ([]model.Doctor, error)
}

type suggestionService struct {
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
}

// NewSuggestionService constructs a new SuggestionService.
func NewSuggestionService(patients repository.PatientRepository, doctors repository.DoctorRepository) SuggestionService {
	return &suggestionService{patients: patients, doctors: doctors}
}

func (s *suggestionService) Suggest(ctx context.Context, patientID int64) ([]model.Doctor, error) {
	p, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	speciality, ok := p.Symptom.Speciality()
	if !ok {
		// Stored rows pass validation on insert, so this means data corruption.
		return nil, fmt.Errorf("patient %d has unknown symptom %q", p.ID, p.Symptom)
	}

	if !model.CityServiceable(p.City) {
		return nil, ErrUnsupportedRegion
	}

	docs, err := s.doctors.FindByCityAndSpeciality(ctx, p.City, speciality)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDoctorAvailable
	}
	return docs, nil
}
