package postgres

import (
	"context"
	"database/sql"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

const requestViewSelect = `
		SELECT r.id, r.sender_id, r.receiver_id, r.pet_id, r.request_type, r.message, r.attached_file,
		       r.status, r.owner_response_message, r.created_at,
		       p.pet_name, s.first_name, s.last_name, s.location, s.phone
		FROM interaction_requests r
		JOIN pets p ON p.id = r.pet_id
		JOIN users s ON s.id = r.sender_id`

// RequestPostgres is a PostgreSQL implementation of repository.RequestRepository.
type RequestPostgres struct {
	db *sql.DB
}

// NewRequestPostgres creates a new RequestPostgres repository.
func NewRequestPostgres(db *sql.DB) *RequestPostgres {
	return &RequestPostgres{db: db}
}

var _ repository.RequestRepository = (*RequestPostgres)(nil)

func (r *RequestPostgres) Create(ctx context.Context, in *model.InteractionRequest) (*model.InteractionRequest, error) {
	const q = `
		INSERT INTO interaction_requests (sender_id, receiver_id, pet_id, request_type, message, attached_file, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	out := *in
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		in.SenderID,
		in.ReceiverID,
		in.PetID,
		string(in.RequestType),
		in.Message,
		in.AttachedFile,
		string(in.Status),
	).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RequestPostgres) FindByID(ctx context.Context, id string) (*model.RequestView, error) {
	q := requestViewSelect + "\n\t\tWHERE r.id = $1"
	return scanRequestView(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *RequestPostgres) HasPending(ctx context.Context, senderID, petID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM interaction_requests
			WHERE sender_id = $1 AND pet_id = $2 AND status = 'Pending'
		)
	`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, senderID, petID).Scan(&exists)
	return exists, err
}

func (r *RequestPostgres) ListInbox(ctx context.Context, receiverID string) ([]model.RequestView, error) {
	return r.list(ctx, requestViewSelect+"\n\t\tWHERE r.receiver_id = $1\n\t\tORDER BY r.created_at DESC", receiverID)
}

func (r *RequestPostgres) ListSent(ctx context.Context, senderID string) ([]model.RequestView, error) {
	return r.list(ctx, requestViewSelect+"\n\t\tWHERE r.sender_id = $1\n\t\tORDER BY r.created_at DESC", senderID)
}

func (r *RequestPostgres) list(ctx context.Context, q string, arg string) ([]model.RequestView, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RequestView, 0)
	for rows.Next() {
		v, err := scanRequestView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	return items, rows.Err()
}

func (r *RequestPostgres) UpdateStatus(ctx context.Context, id string, status model.RequestStatus, response string) error {
	const q = `UPDATE interaction_requests SET status = $2, owner_response_message = $3 WHERE id = $1`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id, string(status), response))
}

func (r *RequestPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM interaction_requests WHERE id = $1`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	return err
}

func (r *RequestPostgres) DeleteByPet(ctx context.Context, petID string) error {
	const q = `DELETE FROM interaction_requests WHERE pet_id = $1`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, petID)
	return err
}

func scanRequestView(s scanner) (*model.RequestView, error) {
	var (
		v           model.RequestView
		typ, status string
	)
	if err := s.Scan(
		&v.ID,
		&v.SenderID,
		&v.ReceiverID,
		&v.PetID,
		&typ,
		&v.Message,
		&v.AttachedFile,
		&status,
		&v.OwnerResponseMessage,
		&v.CreatedAt,
		&v.PetName,
		&v.SenderFirst,
		&v.SenderLast,
		&v.SenderLocation,
		&v.SenderPhone,
	); err != nil {
		return nil, err
	}
	v.RequestType = model.RequestType(typ)
	v.Status = model.RequestStatus(status)
	return &v, nil
}
