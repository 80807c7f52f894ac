package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medref/internal/model"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doc *model.Doctor) (*model.Doctor, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByCityAndSpeciality(ctx context.Context, city string, speciality model.Speciality) ([]model.Doctor, error) {
	args := m.Called(ctx, city, speciality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
