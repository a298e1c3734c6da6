// Package service holds the use cases behind the HTTP API.
// Errors returned to handlers wrap one of the sentinels below.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrOTPInvalid         = errors.New("invalid otp")
	ErrOTPExpired         = errors.New("otp expired")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrInsufficientPoints = errors.New("insufficient points balance")
	ErrUnavailable        = errors.New("service unavailable")
	ErrReaderNil          = errors.New("reader is nil")

	ErrEmailTaken     = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrAlreadyAwarded = fmt.Errorf("%w: points already awarded", ErrConflict)
)

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// notFound maps a missing row to ErrNotFound with a message naming what was missing.
func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s not found", ErrNotFound, what)
	}
	return err
}

func validation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
