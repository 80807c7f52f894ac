package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medref/internal/model"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id int64) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
