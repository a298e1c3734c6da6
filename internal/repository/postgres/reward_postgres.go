package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

const activityColumns = `id, name, system_name, points_value, interaction_type, is_once_only`

// RewardPostgres is a PostgreSQL implementation of repository.RewardRepository.
type RewardPostgres struct {
	db *sql.DB
}

// NewRewardPostgres creates a new RewardPostgres repository.
func NewRewardPostgres(db *sql.DB) *RewardPostgres {
	return &RewardPostgres{db: db}
}

var _ repository.RewardRepository = (*RewardPostgres)(nil)

func (r *RewardPostgres) ActivityBySystemName(ctx context.Context, systemName string) (*model.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE system_name = $1`
	return scanActivity(database.Conn(ctx, r.db).QueryRowContext(ctx, q, systemName))
}

func (r *RewardPostgres) ListActivities(ctx context.Context) ([]model.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities ORDER BY points_value, system_name`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r *RewardPostgres) HasTransaction(ctx context.Context, userID, activityID, reference string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM points_transactions
			WHERE user_id = $1 AND activity_id = $2 AND ($3 = '' OR reference = $3)
		)
	`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, userID, activityID, reference).Scan(&exists)
	return exists, err
}

func (r *RewardPostgres) EnsureWallet(ctx context.Context, userID string) error {
	const q = `INSERT INTO wallets (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, userID)
	return err
}

func (r *RewardPostgres) GetWallet(ctx context.Context, userID string) (*model.Wallet, error) {
	const q = `SELECT user_id, total_points, updated_at FROM wallets WHERE user_id = $1`
	return scanWallet(database.Conn(ctx, r.db).QueryRowContext(ctx, q, userID))
}

func (r *RewardPostgres) LockWallet(ctx context.Context, userID string) (*model.Wallet, error) {
	const q = `SELECT user_id, total_points, updated_at FROM wallets WHERE user_id = $1 FOR UPDATE`
	return scanWallet(database.Conn(ctx, r.db).QueryRowContext(ctx, q, userID))
}

func (r *RewardPostgres) AddPoints(ctx context.Context, userID string, delta int) (int, error) {
	const q = `
		UPDATE wallets
		SET total_points = total_points + $2, updated_at = now()
		WHERE user_id = $1
		RETURNING total_points
	`
	var total int
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, userID, delta).Scan(&total)
	return total, err
}

func (r *RewardPostgres) AppendTransaction(ctx context.Context, t *model.PointsTransaction) error {
	const q = `
		INSERT INTO points_transactions (user_id, activity_id, points_change, transaction_type, reference, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		t.UserID,
		t.ActivityID,
		t.PointsChange,
		string(t.TransactionType),
		t.Reference,
		t.Description,
	).Scan(&t.ID, &t.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *RewardPostgres) ListTransactions(ctx context.Context, userID string) ([]model.PointsTransaction, error) {
	const q = `
		SELECT t.id, t.user_id, t.activity_id, a.name, t.points_change, t.transaction_type,
		       t.reference, t.description, t.created_at
		FROM points_transactions t
		JOIN activities a ON a.id = t.activity_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
	`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PointsTransaction, 0)
	for rows.Next() {
		var (
			t   model.PointsTransaction
			typ string
		)
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.ActivityID,
			&t.ActivityName,
			&t.PointsChange,
			&typ,
			&t.Reference,
			&t.Description,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		t.TransactionType = model.InteractionType(typ)
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *RewardPostgres) CreateCoupon(ctx context.Context, c *model.RewardCoupon) (*model.RewardCoupon, error) {
	const q = `
		INSERT INTO reward_coupons (user_id, activity_id, code)
		VALUES ($1, $2, $3)
		RETURNING id, is_used, created_at
	`
	out := *c
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, c.UserID, c.ActivityID, c.Code).Scan(
		&out.ID, &out.IsUsed, &out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RewardPostgres) ListCoupons(ctx context.Context, userID string) ([]model.RewardCoupon, error) {
	const q = `
		SELECT c.id, c.user_id, c.activity_id, a.name, c.code, c.is_used, c.created_at
		FROM reward_coupons c
		JOIN activities a ON a.id = c.activity_id
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC
	`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RewardCoupon, 0)
	for rows.Next() {
		var c model.RewardCoupon
		if err := rows.Scan(&c.ID, &c.UserID, &c.ActivityID, &c.RewardName, &c.Code, &c.IsUsed, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func scanActivity(s scanner) (*model.Activity, error) {
	var (
		a   model.Activity
		typ string
	)
	if err := s.Scan(&a.ID, &a.Name, &a.SystemName, &a.PointsValue, &typ, &a.IsOnceOnly); err != nil {
		return nil, err
	}
	a.InteractionType = model.InteractionType(typ)
	return &a, nil
}

func scanWallet(s scanner) (*model.Wallet, error) {
	var w model.Wallet
	if err := s.Scan(&w.UserID, &w.TotalPoints, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// PushTokenPostgres is a PostgreSQL implementation of repository.PushTokenRepository.
type PushTokenPostgres struct {
	db *sql.DB
}

// NewPushTokenPostgres creates a new PushTokenPostgres repository.
func NewPushTokenPostgres(db *sql.DB) *PushTokenPostgres {
	return &PushTokenPostgres{db: db}
}

var _ repository.PushTokenRepository = (*PushTokenPostgres)(nil)

func (r *PushTokenPostgres) Upsert(ctx context.Context, t *model.PushToken) (*model.PushToken, error) {
	const q = `
		INSERT INTO push_tokens (user_id, token, platform)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE
		SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform, updated_at = now()
		RETURNING id, user_id, token, platform, created_at, updated_at
	`
	var out model.PushToken
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, t.UserID, t.Token, t.Platform).Scan(
		&out.ID, &out.UserID, &out.Token, &out.Platform, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PushTokenPostgres) Delete(ctx context.Context, userID, token string) error {
	const q = `DELETE FROM push_tokens WHERE user_id = $1 AND token = $2`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, userID, token))
}

func (r *PushTokenPostgres) TokensForUser(ctx context.Context, userID string) ([]string, error) {
	const q = `SELECT token FROM push_tokens WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, rows.Err()
}
