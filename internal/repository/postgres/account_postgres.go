package postgres

import (
	"context"
	"database/sql"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

const userColumns = `id, first_name, last_name, email, phone, location, profile_picture, password_hash, is_active, is_staff, created_at`

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (first_name, last_name, email, phone, location, profile_picture, password_hash, is_active, is_staff)
		VALUES ($1, $2, lower($3), $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Phone,
		u.Location,
		u.ProfilePicture,
		u.PasswordHash,
		u.IsActive,
		u.IsStaff,
	)
	return scanUser(row)
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = lower($1)`
	return scanUser(database.Conn(ctx, r.db).QueryRowContext(ctx, q, email))
}

func (r *UserPostgres) UpdateProfile(ctx context.Context, u *model.User) error {
	const q = `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, location = $5, profile_picture = $6
		WHERE id = $1
	`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q,
		u.ID, u.FirstName, u.LastName, u.Phone, u.Location, u.ProfilePicture,
	))
}

func (r *UserPostgres) UpdateRegistration(ctx context.Context, u *model.User) error {
	const q = `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, location = $5, password_hash = $6
		WHERE id = $1 AND NOT is_active
	`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q,
		u.ID, u.FirstName, u.LastName, u.Phone, u.Location, u.PasswordHash,
	))
}

func (r *UserPostgres) SetPassword(ctx context.Context, id, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $2 WHERE id = $1`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id, passwordHash))
}

func (r *UserPostgres) Activate(ctx context.Context, id string) error {
	const q = `UPDATE users SET is_active = TRUE WHERE id = $1`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id))
}

func scanUser(s scanner) (*model.User, error) {
	var u model.User
	if err := s.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Location,
		&u.ProfilePicture,
		&u.PasswordHash,
		&u.IsActive,
		&u.IsStaff,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// OTPPostgres is a PostgreSQL implementation of repository.OTPRepository.
type OTPPostgres struct {
	db *sql.DB
}

// NewOTPPostgres creates a new OTPPostgres repository.
func NewOTPPostgres(db *sql.DB) *OTPPostgres {
	return &OTPPostgres{db: db}
}

var _ repository.OTPRepository = (*OTPPostgres)(nil)

func (r *OTPPostgres) Create(ctx context.Context, o *model.OTP) error {
	const q = `
		INSERT INTO otps (user_id, code_hash, otp_type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return database.Conn(ctx, r.db).QueryRowContext(ctx, q, o.UserID, o.CodeHash, string(o.Type), o.CreatedAt).Scan(&o.ID)
}

func (r *OTPPostgres) LatestUnused(ctx context.Context, userID string, typ model.OTPType) (*model.OTP, error) {
	const q = `
		SELECT id, user_id, code_hash, otp_type, is_used, created_at
		FROM otps
		WHERE user_id = $1 AND otp_type = $2 AND NOT is_used
		ORDER BY created_at DESC
		LIMIT 1
	`
	var o model.OTP
	var typ2 string
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, userID, string(typ)).Scan(
		&o.ID, &o.UserID, &o.CodeHash, &typ2, &o.IsUsed, &o.CreatedAt,
	); err != nil {
		return nil, err
	}
	o.Type = model.OTPType(typ2)
	return &o, nil
}

func (r *OTPPostgres) MarkUsed(ctx context.Context, id string) error {
	const q = `UPDATE otps SET is_used = TRUE WHERE id = $1 AND NOT is_used`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id))
}
