package repository

import (
	"context"

	"petcare/internal/model"
)

// RewardRepository is the points ledger: catalog, wallets, transactions and coupons.
// Mutating methods are meant to run inside one transaction.
type RewardRepository interface {
	ActivityBySystemName(ctx context.Context, systemName string) (*model.Activity, error)
	ListActivities(ctx context.Context) ([]model.Activity, error)

	// HasTransaction reports whether the user already has a ledger line for the activity.
	// A non-empty reference narrows the match to that reference.
	HasTransaction(ctx context.Context, userID, activityID, reference string) (bool, error)

	// EnsureWallet creates an empty wallet if the user has none.
	EnsureWallet(ctx context.Context, userID string) error
	GetWallet(ctx context.Context, userID string) (*model.Wallet, error)
	// LockWallet reads the wallet with a row lock held until the transaction ends.
	LockWallet(ctx context.Context, userID string) (*model.Wallet, error)
	// AddPoints applies delta and returns the new balance.
	AddPoints(ctx context.Context, userID string, delta int) (int, error)

	AppendTransaction(ctx context.Context, t *model.PointsTransaction) error
	ListTransactions(ctx context.Context, userID string) ([]model.PointsTransaction, error)

	CreateCoupon(ctx context.Context, c *model.RewardCoupon) (*model.RewardCoupon, error)
	ListCoupons(ctx context.Context, userID string) ([]model.RewardCoupon, error)
}

// PushTokenRepository stores device tokens.
type PushTokenRepository interface {
	// Upsert binds token to the user, replacing any previous owner.
	Upsert(ctx context.Context, t *model.PushToken) (*model.PushToken, error)
	Delete(ctx context.Context, userID, token string) error
	TokensForUser(ctx context.Context, userID string) ([]string, error)
}
