package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medref/internal/model"
)

type MockDoctorService struct {
	mock.Mock
}

func (m *MockDoctorService) Register(ctx context.Context, doc *model.Doctor) (*model.Doctor, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Doctor), args.Error(1)
}

func (m *MockDoctorService) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
