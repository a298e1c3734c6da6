package repository

import (
	"context"

	"petcare/internal/model"
)

// UserRepository defines data access for accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateProfile writes the user-editable profile fields.
	UpdateProfile(ctx context.Context, u *model.User) error
	// UpdateRegistration overwrites names, contact details and password of a pending account.
	UpdateRegistration(ctx context.Context, u *model.User) error
	SetPassword(ctx context.Context, id, passwordHash string) error
	Activate(ctx context.Context, id string) error
}

// OTPRepository stores hashed one-time passwords.
type OTPRepository interface {
	Create(ctx context.Context, o *model.OTP) error
	// LatestUnused returns the newest unused code of the given type.
	LatestUnused(ctx context.Context, userID string, typ model.OTPType) (*model.OTP, error)
	MarkUsed(ctx context.Context, id string) error
}
