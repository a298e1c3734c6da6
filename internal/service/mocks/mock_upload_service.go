package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
	"petcare/internal/service"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, ownerID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Upload, error) {
	args := m.Called(ctx, ownerID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, ownerID string, limit, offset int) (*service.UploadListResult, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadListResult), args.Error(1)
}

func (m *MockUploadService) Get(ctx context.Context, ownerID, id string) (*model.Upload, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadService) Open(ctx context.Context, ownerID, id string) (io.ReadCloser, *model.Upload, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Upload), args.Error(2)
}

func (m *MockUploadService) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type MockDiagnosisService struct {
	mock.Mock
}

func (m *MockDiagnosisService) Symptoms(ctx context.Context, symptoms map[string]float64) (*service.SymptomDiagnosis, error) {
	args := m.Called(ctx, symptoms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SymptomDiagnosis), args.Error(1)
}

func (m *MockDiagnosisService) CatImage(ctx context.Context, image []byte) (*service.ImageDiagnosis, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageDiagnosis), args.Error(1)
}
