package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
	"petcare/internal/repository"
	repoMocks "petcare/internal/repository/mocks"
	"petcare/internal/storage"
	storeMocks "petcare/internal/storage/mocks"
)

func echoKey(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
	return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		originalFilename string
		contentType      string
		size             int64
		setupMocks       func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "happy path",
			originalFilename: "Milo.PNG",
			contentType:      "image/png",
			size:             11,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello world")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".png")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "Milo.PNG", "owner-id": "u1"},
				}).Return(storage.ObjectInfo{
					Key:         "uploads/uuid.png",
					Size:        11,
					ContentType: "image/png",
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.Upload) bool {
					return u.OwnerID == "u1" && u.ID != "" && u.StoragePath == "uploads/uuid.png"
				})).Return(&model.Upload{ID: "gen-id", StoragePath: "uploads/uuid.png"}, nil)
				mStore.On("URL", ctx, "uploads/uuid.png").Return("https://cdn/petcare/uploads/uuid.png", nil)

				return r
			},
		},
		{
			name:             "validation error - nil reader",
			originalFilename: "a.png",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "validation error - not an image",
			originalFilename: "notes.txt",
			contentType:      "text/plain",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				return strings.NewReader("hello")
			},
			wantErr: ErrValidation,
		},
		{
			name:             "storage error",
			originalFilename: "a.png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:             "repository error with successful rollback",
			originalFilename: "a.png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(echoKey, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "uploads/")
				})).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:             "repository error with failed rollback",
			originalFilename: "a.png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(echoKey, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockUploadRepository)
			svc := NewUploadService(mStore, mRepo)

			r := tt.setupMocks(mStore, mRepo)

			up, err := svc.Upload(ctx, "u1", r, tt.originalFilename, tt.contentType, tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "https://cdn/petcare/uploads/uuid.png", up.URL)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUploadService_Upload_RollbackKeepsBothErrors(t *testing.T) {
	ctx := context.Background()
	errSave := errors.New("db fail")
	errDelete := errors.New("delete fail")

	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockUploadRepository)
	r := strings.NewReader("hello")
	mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(echoKey, nil)
	mRepo.On("Create", ctx, mock.Anything).Return(nil, errSave)
	mStore.On("Delete", ctx, mock.Anything).Return(errDelete)

	_, err := NewUploadService(mStore, mRepo).Upload(ctx, "u1", r, "a.png", "image/png", 5)

	assert.ErrorIs(t, err, errSave)
	assert.ErrorIs(t, err, errDelete)
}

func TestUploadService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository)
		wantErr    bool
		checkRes   func(t *testing.T, res *UploadListResult)
	}{
		{
			name:  "happy path fills urls",
			limit: 10,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("List", ctx, "u1", repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Upload]{
						Items: []model.Upload{{ID: "1", StoragePath: "uploads/1.png"}, {ID: "2", StoragePath: "uploads/2.png"}},
						Total: 2,
					}, nil)
				mStore.On("URL", ctx, "uploads/1.png").Return("u/1", nil)
				mStore.On("URL", ctx, "uploads/2.png").Return("u/2", nil)
			},
			checkRes: func(t *testing.T, res *UploadListResult) {
				assert.Equal(t, 2, res.Total)
				assert.Equal(t, "u/2", res.Items[1].URL)
			},
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("List", ctx, "u1", repository.PageQuery{Limit: DefaultUploadLimit, Offset: 0}).
					Return(&repository.PageResult[model.Upload]{Items: []model.Upload{}, Total: 0}, nil)
			},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("List", ctx, "u1", mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockUploadRepository)
			tt.setupMocks(mStore, mRepo)

			res, err := NewUploadService(mStore, mRepo).List(ctx, "u1", tt.limit, tt.offset)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
			mStore.AssertExpectations(t)
		})
	}
}

func TestUploadService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("FindByID", ctx, "up1", "u1").Return(&model.Upload{ID: "up1", StoragePath: "uploads/a.png"}, nil)
				mStore.On("Delete", ctx, "uploads/a.png").Return(nil)
				mRepo.On("Delete", ctx, "up1").Return(nil)
			},
		},
		{
			name: "not found or not owned",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("FindByID", ctx, "up1", "u1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage delete error keeps row",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("FindByID", ctx, "up1", "u1").Return(&model.Upload{ID: "up1", StoragePath: "p"}, nil)
				mStore.On("Delete", ctx, "p").Return(errors.New("storage fail"))
			},
			wantErr: errors.New("delete storage: storage fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockUploadRepository)
			tt.setupMocks(mStore, mRepo)

			err := NewUploadService(mStore, mRepo).Delete(ctx, "u1", "up1")

			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.wantErr, ErrNotFound):
				assert.ErrorIs(t, err, ErrNotFound)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUploadService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("streams object", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockUploadRepository)
		mRepo.On("FindByID", ctx, "up1", "u1").Return(&model.Upload{ID: "up1", StoragePath: "uploads/a.png"}, nil)
		mStore.On("Get", ctx, "uploads/a.png").
			Return(io.NopCloser(strings.NewReader("png")), storage.ObjectInfo{ContentType: "image/png"}, nil)

		rc, up, err := NewUploadService(mStore, mRepo).Open(ctx, "u1", "up1")
		assert.NoError(t, err)
		defer rc.Close()
		b, _ := io.ReadAll(rc)
		assert.Equal(t, "png", string(b))
		assert.Equal(t, "image/png", up.ContentType)
	})

	t.Run("not owned", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockUploadRepository)
		mRepo.On("FindByID", ctx, "up1", "u1").Return(nil, sql.ErrNoRows)

		_, _, err := NewUploadService(mStore, mRepo).Open(ctx, "u1", "up1")
		assert.ErrorIs(t, err, ErrNotFound)
		mStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockUploadRepository)
		mRepo.On("FindByID", ctx, "up1", "u1").Return(&model.Upload{ID: "up1", StoragePath: "p"}, nil)
		mStore.On("Get", ctx, "p").Return(nil, storage.ObjectInfo{}, errors.New("gone"))

		_, _, err := NewUploadService(mStore, mRepo).Open(ctx, "u1", "up1")
		assert.EqualError(t, err, "read storage: gone")
	})
}
