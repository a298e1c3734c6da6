package model

import "time"

// InteractionType says whether an activity earns or spends points.
type InteractionType string

const (
	InteractionEarn   InteractionType = "EARN"
	InteractionRedeem InteractionType = "REDEEM"
)

// Known activity system names.
const (
	ActivityProfileComplete  = "PROFILE_COMPLETE"
	ActivityAdoptionPost     = "ADOPTION_POST"
	ActivityMatingPost       = "MATING_POST"
	ActivityAdoptionApproved = "ADOPTION_APPROVED"
	ActivityMatingApproved   = "MATING_APPROVED"
)

// Activity is an entry in the points catalog.
type Activity struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SystemName      string          `json:"system_name"`
	PointsValue     int             `json:"points_value"`
	InteractionType InteractionType `json:"interaction_type"`
	IsOnceOnly      bool            `json:"is_once_only"`
}

// Wallet holds a user's point balance.
type Wallet struct {
	UserID      string    `json:"user_id"`
	TotalPoints int       `json:"total_points"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PointsTransaction is one immutable ledger line. PointsChange is negative for redemptions.
type PointsTransaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	ActivityID      string          `json:"activity_id"`
	ActivityName    string          `json:"activity_name"`
	PointsChange    int             `json:"points_change"`
	TransactionType InteractionType `json:"transaction_type"`
	Reference       string          `json:"reference,omitempty"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RewardCoupon is issued when points are redeemed.
type RewardCoupon struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ActivityID string    `json:"activity_id"`
	RewardName string    `json:"reward_name"`
	Code       string    `json:"code"`
	IsUsed     bool      `json:"is_used"`
	CreatedAt  time.Time `json:"created_at"`
}
