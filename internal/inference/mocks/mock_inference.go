package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/inference"
)

type MockSymptomPredictor struct {
	mock.Mock
}

func (m *MockSymptomPredictor) Predict(symptoms map[string]float64) (string, float64, error) {
	args := m.Called(symptoms)
	return args.String(0), args.Get(1).(float64), args.Error(2)
}

type MockImageDetector struct {
	mock.Mock
}

func (m *MockImageDetector) Detect(ctx context.Context, image []byte) (*inference.ImageResult, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inference.ImageResult), args.Error(1)
}
