package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"petcare/internal/model"
	"petcare/internal/repository"
)

// AwardResult describes a successful points award.
type AwardResult struct {
	Activity      model.Activity `json:"-"`
	PointsAwarded int            `json:"points_awarded"`
	NewBalance    int            `json:"new_total_points"`
}

// RedeemResult is returned after a reward was exchanged for a coupon.
type RedeemResult struct {
	Message          string `json:"message"`
	CouponCode       string `json:"coupon_code"`
	RewardName       string `json:"reward_name"`
	PointsCost       int    `json:"points_cost"`
	NewPointsBalance int    `json:"new_points_balance"`
}

// RewardSummary is the wallet balance with the full ledger.
type RewardSummary struct {
	TotalPoints  int                       `json:"total_points"`
	Transactions []model.PointsTransaction `json:"transactions"`
}

// RewardService is the points ledger. Every balance change and its ledger
// line are written in the same transaction.
type RewardService interface {
	// Award credits an EARN activity. Once-only activities and non-empty
	// references are awarded at most once per user.
	Award(ctx context.Context, userID, systemName, reference, description string) (*AwardResult, error)
	// Redeem debits a REDEEM activity and issues a coupon.
	Redeem(ctx context.Context, userID, systemName string) (*RedeemResult, error)
	Balance(ctx context.Context, userID string) (*model.Wallet, error)
	Summary(ctx context.Context, userID string) (*RewardSummary, error)
	Coupons(ctx context.Context, userID string) ([]model.RewardCoupon, error)
	Activities(ctx context.Context) ([]model.Activity, error)
	Logs(ctx context.Context, userID string) ([]model.PointsTransaction, error)
}

type rewardService struct {
	repo repository.RewardRepository
	tx   TxRunner
}

func NewRewardService(repo repository.RewardRepository, tx TxRunner) RewardService {
	return &rewardService{repo: repo, tx: tx}
}

func (s *rewardService) activity(ctx context.Context, systemName string, want model.InteractionType) (*model.Activity, error) {
	if systemName == "" {
		return nil, validation("system_name is required")
	}
	a, err := s.repo.ActivityBySystemName(ctx, systemName)
	if err != nil {
		return nil, notFound(err, "activity")
	}
	if a.InteractionType != want {
		return nil, validation("activity %s is not %s", systemName, want)
	}
	return a, nil
}

func (s *rewardService) Award(ctx context.Context, userID, systemName, reference, description string) (*AwardResult, error) {
	a, err := s.activity(ctx, systemName, model.InteractionEarn)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = a.Name
	}

	res := &AwardResult{Activity: *a, PointsAwarded: a.PointsValue}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureWallet(ctx, userID); err != nil {
			return err
		}
		// Awards for one user are serialised on the wallet row.
		if _, err := s.repo.LockWallet(ctx, userID); err != nil {
			return err
		}
		if a.IsOnceOnly || reference != "" {
			match := reference
			if a.IsOnceOnly {
				match = ""
			}
			done, err := s.repo.HasTransaction(ctx, userID, a.ID, match)
			if err != nil {
				return err
			}
			if done {
				return ErrAlreadyAwarded
			}
		}
		balance, err := s.repo.AddPoints(ctx, userID, a.PointsValue)
		if err != nil {
			return err
		}
		res.NewBalance = balance
		return s.repo.AppendTransaction(ctx, &model.PointsTransaction{
			UserID:          userID,
			ActivityID:      a.ID,
			PointsChange:    a.PointsValue,
			TransactionType: model.InteractionEarn,
			Reference:       reference,
			Description:     description,
		})
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrAlreadyAwarded
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *rewardService) Redeem(ctx context.Context, userID, systemName string) (*RedeemResult, error) {
	a, err := s.activity(ctx, systemName, model.InteractionRedeem)
	if err != nil {
		return nil, err
	}

	var res *RedeemResult
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureWallet(ctx, userID); err != nil {
			return err
		}
		w, err := s.repo.LockWallet(ctx, userID)
		if err != nil {
			return err
		}
		if w.TotalPoints < a.PointsValue {
			return fmt.Errorf("%w: %d points needed, %d available", ErrInsufficientPoints, a.PointsValue, w.TotalPoints)
		}
		balance, err := s.repo.AddPoints(ctx, userID, -a.PointsValue)
		if err != nil {
			return err
		}
		if err := s.repo.AppendTransaction(ctx, &model.PointsTransaction{
			UserID:          userID,
			ActivityID:      a.ID,
			PointsChange:    -a.PointsValue,
			TransactionType: model.InteractionRedeem,
			Description:     "Redeemed " + a.Name,
		}); err != nil {
			return err
		}
		coupon, err := s.repo.CreateCoupon(ctx, &model.RewardCoupon{
			UserID:     userID,
			ActivityID: a.ID,
			RewardName: a.Name,
			Code:       uuid.NewString(),
		})
		if err != nil {
			return err
		}
		res = &RedeemResult{
			Message:          fmt.Sprintf("Successfully redeemed %d points for %s.", a.PointsValue, a.Name),
			CouponCode:       coupon.Code,
			RewardName:       a.Name,
			PointsCost:       a.PointsValue,
			NewPointsBalance: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *rewardService) Balance(ctx context.Context, userID string) (*model.Wallet, error) {
	if err := s.repo.EnsureWallet(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetWallet(ctx, userID)
}

func (s *rewardService) Summary(ctx context.Context, userID string) (*RewardSummary, error) {
	w, err := s.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RewardSummary{TotalPoints: w.TotalPoints, Transactions: txs}, nil
}

func (s *rewardService) Coupons(ctx context.Context, userID string) ([]model.RewardCoupon, error) {
	return s.repo.ListCoupons(ctx, userID)
}

func (s *rewardService) Activities(ctx context.Context) ([]model.Activity, error) {
	return s.repo.ListActivities(ctx)
}

func (s *rewardService) Logs(ctx context.Context, userID string) ([]model.PointsTransaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}
