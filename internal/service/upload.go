package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"petcare/internal/model"
	"petcare/internal/repository"
	"petcare/internal/storage"
)

// DefaultUploadLimit is the page size of upload listings.
const DefaultUploadLimit = 10

// UploadListResult is the service-level DTO for paginated uploads.
type UploadListResult struct {
	Items []model.Upload `json:"data"`
	Total int            `json:"total"`
}

// UploadService stores images such as pet photos and certificates.
type UploadService interface {
	// Upload writes the content to object storage, saves metadata to DB, and rolls back storage if DB save fails.
	// originalFilename only contributes its extension; the stored name is a UUID.
	Upload(ctx context.Context, ownerID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Upload, error)

	// List returns the owner's uploads using limit/offset and a total count.
	List(ctx context.Context, ownerID string, limit, offset int) (*UploadListResult, error)

	Get(ctx context.Context, ownerID, id string) (*model.Upload, error)

	// Open streams the stored object. The caller closes the reader.
	Open(ctx context.Context, ownerID, id string) (io.ReadCloser, *model.Upload, error)

	// Delete removes an upload from storage, then its record.
	Delete(ctx context.Context, ownerID, id string) error
}

type uploadService struct {
	store storage.Storage
	repo  repository.UploadRepository
	now   func() time.Time
}

func NewUploadService(store storage.Storage, repo repository.UploadRepository) UploadService {
	return &uploadService{store: store, repo: repo, now: time.Now}
}

func (s *uploadService) withURL(ctx context.Context, u *model.Upload) (*model.Upload, error) {
	link, err := s.store.URL(ctx, u.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("object url: %w", err)
	}
	u.URL = link
	return u, nil
}

func (s *uploadService) Upload(ctx context.Context, ownerID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Upload, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, validation("only image uploads are accepted")
	}
	genName := uuid.NewString() + strings.ToLower(filepath.Ext(originalFilename))
	key := path.Join("uploads", genName)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"owner-id":          ownerID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Upload{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Filename:    genName,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %w; rollback delete failed: %w", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return s.withURL(ctx, stored)
}

func (s *uploadService) List(ctx context.Context, ownerID string, limit, offset int) (*UploadListResult, error) {
	if limit <= 0 {
		limit = DefaultUploadLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, ownerID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		if _, err := s.withURL(ctx, &res.Items[i]); err != nil {
			return nil, err
		}
	}
	return &UploadListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *uploadService) Get(ctx context.Context, ownerID, id string) (*model.Upload, error) {
	u, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err, "upload")
	}
	return s.withURL(ctx, u)
}

func (s *uploadService) Open(ctx context.Context, ownerID, id string) (io.ReadCloser, *model.Upload, error) {
	u, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, nil, notFound(err, "upload")
	}
	rc, info, err := s.store.Get(ctx, u.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	if info.ContentType != "" {
		u.ContentType = info.ContentType
	}
	return rc, u, nil
}

func (s *uploadService) Delete(ctx context.Context, ownerID, id string) error {
	u, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return notFound(err, "upload")
	}
	// Keep the row when the object cannot be removed so it can be retried.
	if err := s.store.Delete(ctx, u.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
