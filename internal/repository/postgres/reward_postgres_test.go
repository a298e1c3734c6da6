package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

func TestRewardPostgres_RedeemFlowInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRewardPostgres(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT user_id, total_points, updated_at FROM wallets WHERE user_id = \\$1 FOR UPDATE").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "total_points", "updated_at"}).AddRow("u1", 350, now))
	mock.ExpectQuery("UPDATE wallets SET total_points = total_points \\+ \\$2").
		WithArgs("u1", -300).
		WillReturnRows(sqlmock.NewRows([]string{"total_points"}).AddRow(50))
	mock.ExpectQuery("INSERT INTO points_transactions").
		WithArgs("u1", "act-1", -300, "REDEEM", "", "Redeemed Free grooming session").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("tx-1", now))
	mock.ExpectQuery("INSERT INTO reward_coupons").
		WithArgs("u1", "act-1", "CODE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_used", "created_at"}).AddRow("c-1", false, now))
	mock.ExpectCommit()

	var coupon *model.RewardCoupon
	err = database.NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		w, err := repo.LockWallet(ctx, "u1")
		if err != nil {
			return err
		}
		assert.Equal(t, 350, w.TotalPoints)

		total, err := repo.AddPoints(ctx, "u1", -300)
		if err != nil {
			return err
		}
		assert.Equal(t, 50, total)

		line := &model.PointsTransaction{
			UserID:          "u1",
			ActivityID:      "act-1",
			PointsChange:    -300,
			TransactionType: model.InteractionRedeem,
			Description:     "Redeemed Free grooming session",
		}
		if err := repo.AppendTransaction(ctx, line); err != nil {
			return err
		}
		assert.Equal(t, "tx-1", line.ID)

		coupon, err = repo.CreateCoupon(ctx, &model.RewardCoupon{UserID: "u1", ActivityID: "act-1", Code: "CODE"})
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, "c-1", coupon.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardPostgres_HasTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS \\( SELECT 1 FROM points_transactions WHERE user_id = \\$1 AND activity_id = \\$2 AND \\(\\$3 = '' OR reference = \\$3\\) \\)").
		WithArgs("u1", "act-1", "post-9").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewRewardPostgres(db).HasTransaction(context.Background(), "u1", "act-1", "post-9")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRewardPostgres_AppendTransaction_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO points_transactions").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_points_transactions_reference"})

	err = NewRewardPostgres(db).AppendTransaction(context.Background(), &model.PointsTransaction{
		UserID: "u1", ActivityID: "act-2", PointsChange: 100, TransactionType: model.InteractionEarn, Reference: "post-1",
	})

	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardPostgres_ListActivities(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM activities ORDER BY points_value").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "system_name", "points_value", "interaction_type", "is_once_only"}).
			AddRow("a1", "Complete your profile", "PROFILE_COMPLETE", 50, "EARN", true).
			AddRow("a2", "Free grooming session", "FREE_GROOMING", 300, "REDEEM", false))

	items, err := NewRewardPostgres(db).ListActivities(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.InteractionEarn, items[0].InteractionType)
	assert.True(t, items[0].IsOnceOnly)
	assert.Equal(t, model.InteractionRedeem, items[1].InteractionType)
}

func TestPushTokenPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPushTokenPostgres(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO push_tokens (.+) ON CONFLICT \\(token\\) DO UPDATE").
		WithArgs("u1", "tok-1", "android").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "platform", "created_at", "updated_at"}).
			AddRow("pt-1", "u1", "tok-1", "android", now, now))
	pt, err := repo.Upsert(ctx, &model.PushToken{UserID: "u1", Token: "tok-1", Platform: "android"})
	require.NoError(t, err)
	assert.Equal(t, "pt-1", pt.ID)

	mock.ExpectQuery("SELECT token FROM push_tokens WHERE user_id = \\$1").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("tok-1").AddRow("tok-2"))
	tokens, err := repo.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1", "tok-2"}, tokens)

	assert.NoError(t, mock.ExpectationsWereMet())
}
