package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medref/internal/model"
)

type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Suggest(ctx context.Context, patientID int64) ([]model.Doctor, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}
