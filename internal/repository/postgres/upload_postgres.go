package postgres

import (
	"context"
	"database/sql"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

// UploadPostgres is a PostgreSQL implementation of repository.UploadRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UploadPostgres struct {
	db *sql.DB
}

// NewUploadPostgres creates a new UploadPostgres repository.
func NewUploadPostgres(db *sql.DB) *UploadPostgres {
	return &UploadPostgres{db: db}
}

var _ repository.UploadRepository = (*UploadPostgres)(nil)

// Create inserts a new upload row and returns the stored record.
func (r *UploadPostgres) Create(ctx context.Context, u *model.Upload) (*model.Upload, error) {
	const q = `
		INSERT INTO uploads (id, owner_id, filename, storage_path, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, filename, storage_path, size, content_type, created_at
	`
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		u.ID,
		u.OwnerID,
		u.Filename,
		u.StoragePath,
		u.Size,
		u.ContentType,
		u.CreatedAt,
	)
	return scanUpload(row)
}

// FindByID fetches a single upload belonging to ownerID.
func (r *UploadPostgres) FindByID(ctx context.Context, id, ownerID string) (*model.Upload, error) {
	const q = `
		SELECT id, owner_id, filename, storage_path, size, content_type, created_at
		FROM uploads
		WHERE id = $1 AND owner_id = $2
	`
	return scanUpload(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id, ownerID))
}

// List returns the owner's uploads using LIMIT/OFFSET pagination and a total count.
func (r *UploadPostgres) List(ctx context.Context, ownerID string, pq repository.PageQuery) (*repository.PageResult[model.Upload], error) {
	conn := database.Conn(ctx, r.db)

	const qCount = `SELECT COUNT(*) FROM uploads WHERE owner_id = $1`
	var total int
	if err := conn.QueryRowContext(ctx, qCount, ownerID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, owner_id, filename, storage_path, size, content_type, created_at
		FROM uploads
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := conn.QueryContext(ctx, qList, ownerID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Upload, 0)
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Upload]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes an upload by ID. It does not return an error if the row does not exist.
func (r *UploadPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM uploads WHERE id = $1`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	return err
}

func scanUpload(s scanner) (*model.Upload, error) {
	var u model.Upload
	if err := s.Scan(
		&u.ID,
		&u.OwnerID,
		&u.Filename,
		&u.StoragePath,
		&u.Size,
		&u.ContentType,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
