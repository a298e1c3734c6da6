package repository

import (
	"context"

	"petcare/internal/model"
)

// UploadRepository defines data access for uploaded image metadata.
type UploadRepository interface {
	// Create inserts a new upload record and returns the stored row.
	Create(ctx context.Context, u *model.Upload) (*model.Upload, error)

	// FindByID returns an upload owned by ownerID.
	FindByID(ctx context.Context, id, ownerID string) (*model.Upload, error)

	// List returns a page of the owner's uploads, newest first, and the total count.
	List(ctx context.Context, ownerID string, pq PageQuery) (*PageResult[model.Upload], error)

	// Delete removes an upload by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
