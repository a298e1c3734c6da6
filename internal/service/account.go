package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"petcare/internal/auth"
	"petcare/internal/cache"
	"petcare/internal/mailer"
	"petcare/internal/model"
	"petcare/internal/repository"
)

// TokenIssuer signs and refreshes session tokens.
type TokenIssuer interface {
	IssuePair(userID string) (*auth.TokenPair, error)
	Refresh(refreshToken string) (string, error)
}

// SignupInput is the registration form.
type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Location        string
	Password        string
	ConfirmPassword string
}

// ResetPasswordInput completes a password reset.
type ResetPasswordInput struct {
	Email           string
	OTP             string
	NewPassword     string
	ConfirmPassword string
}

// ProfilePatch holds the profile fields a user may change. Nil fields are left as is.
type ProfilePatch struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	Location       *string
	ProfilePicture *string
}

// AccountService covers signup, login, password reset and the caller's profile.
type AccountService interface {
	RequestSignup(ctx context.Context, in SignupInput) error
	VerifySignup(ctx context.Context, email, code string) (*auth.TokenPair, error)
	Login(ctx context.Context, email, password string) (*auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, in ResetPasswordInput) error
	Me(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*model.User, error)
}

// AccountDeps groups the collaborators of AccountService.
type AccountDeps struct {
	Users          repository.UserRepository
	OTPs           repository.OTPRepository
	Tx             TxRunner
	Tokens         TokenIssuer
	Mailer         mailer.Mailer
	Throttle       cache.Throttle
	Rewards        RewardService
	OTPTTL         time.Duration
	ResendCooldown time.Duration
	Log            *zap.Logger
}

type accountService struct {
	AccountDeps
	now func() time.Time
}

func NewAccountService(d AccountDeps) AccountService {
	if d.Throttle == nil {
		d.Throttle = cache.NoopThrottle{}
	}
	if d.OTPTTL <= 0 {
		d.OTPTTL = 5 * time.Minute
	}
	return &accountService{AccountDeps: d, now: time.Now}
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// checkNewPassword rejects mismatched or over-long passwords before hashing.
func checkNewPassword(password, confirm string) error {
	if password != confirm {
		return validation("passwords do not match")
	}
	if len(password) > auth.MaxSecretBytes {
		return validation("password must be at most %d bytes", auth.MaxSecretBytes)
	}
	return nil
}

func (s *accountService) RequestSignup(ctx context.Context, in SignupInput) error {
	email := normalizeEmail(in.Email)
	if err := checkNewPassword(in.Password, in.ConfirmPassword); err != nil {
		return err
	}

	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if existing != nil && existing.IsActive {
		return ErrEmailTaken
	}

	if err := s.throttle(ctx, model.OTPSignup, email); err != nil {
		return err
	}

	hash, err := auth.HashSecret(in.Password)
	if err != nil {
		return err
	}
	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}

	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u := &model.User{
			FirstName:    strings.TrimSpace(in.FirstName),
			LastName:     strings.TrimSpace(in.LastName),
			Email:        email,
			Phone:        strings.TrimSpace(in.Phone),
			Location:     strings.TrimSpace(in.Location),
			PasswordHash: hash,
		}
		if existing != nil {
			u.ID = existing.ID
			if err := s.Users.UpdateRegistration(ctx, u); err != nil {
				return err
			}
		} else {
			created, err := s.Users.Create(ctx, u)
			if err != nil {
				return err
			}
			u = created
		}
		return s.storeOTP(ctx, u.ID, model.OTPSignup, code)
	})
	if err != nil {
		return err
	}

	s.sendOTP(ctx, email, "Verify your PetCare account", code)
	return nil
}

func (s *accountService) VerifySignup(ctx context.Context, email, code string) (*auth.TokenPair, error) {
	u, err := s.Users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, notFound(err, "user")
	}
	otp, err := s.checkOTP(ctx, u.ID, model.OTPSignup, code)
	if err != nil {
		return nil, err
	}

	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.OTPs.MarkUsed(ctx, otp.ID); err != nil {
			return err
		}
		return s.Users.Activate(ctx, u.ID)
	})
	if err != nil {
		return nil, err
	}
	u.IsActive = true

	s.awardProfileComplete(ctx, u)
	return s.Tokens.IssuePair(u.ID)
}

func (s *accountService) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	u, err := s.Users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckSecret(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}
	return s.Tokens.IssuePair(u.ID)
}

func (s *accountService) Refresh(_ context.Context, refreshToken string) (string, error) {
	access, err := s.Tokens.Refresh(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: refresh token is invalid or expired", ErrInvalidCredentials)
	}
	return access, nil
}

func (s *accountService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return notFound(err, "user")
	}
	if err := s.throttle(ctx, model.OTPResetPassword, email); err != nil {
		return err
	}
	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.storeOTP(ctx, u.ID, model.OTPResetPassword, code); err != nil {
		return err
	}
	s.sendOTP(ctx, email, "Reset Password OTP", code)
	return nil
}

func (s *accountService) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if err := checkNewPassword(in.NewPassword, in.ConfirmPassword); err != nil {
		return err
	}
	u, err := s.Users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return notFound(err, "user")
	}
	otp, err := s.checkOTP(ctx, u.ID, model.OTPResetPassword, in.OTP)
	if err != nil {
		return err
	}
	hash, err := auth.HashSecret(in.NewPassword)
	if err != nil {
		return err
	}
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.Users.SetPassword(ctx, u.ID, hash); err != nil {
			return err
		}
		return s.OTPs.MarkUsed(ctx, otp.ID)
	})
}

func (s *accountService) Me(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return u, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID string, p ProfilePatch) (*model.User, error) {
	u, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.Phone, p.Phone)
	set(&u.Location, p.Location)
	set(&u.ProfilePicture, p.ProfilePicture)

	if err := s.Users.UpdateProfile(ctx, u); err != nil {
		return nil, notFound(err, "user")
	}
	s.awardProfileComplete(ctx, u)
	return u, nil
}

// checkOTP loads the newest unused code of typ and verifies it.
func (s *accountService) checkOTP(ctx context.Context, userID string, typ model.OTPType, code string) (*model.OTP, error) {
	otp, err := s.OTPs.LatestUnused(ctx, userID, typ)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no valid otp found", ErrOTPInvalid)
	}
	if err != nil {
		return nil, err
	}
	if otp.Expired(s.now(), s.OTPTTL) {
		return nil, ErrOTPExpired
	}
	if !auth.CheckSecret(otp.CodeHash, code) {
		return nil, ErrOTPInvalid
	}
	return otp, nil
}

func (s *accountService) storeOTP(ctx context.Context, userID string, typ model.OTPType, code string) error {
	hash, err := auth.HashSecret(code)
	if err != nil {
		return err
	}
	return s.OTPs.Create(ctx, &model.OTP{
		UserID:    userID,
		CodeHash:  hash,
		Type:      typ,
		CreatedAt: s.now().UTC(),
	})
}

func (s *accountService) throttle(ctx context.Context, typ model.OTPType, email string) error {
	if s.ResendCooldown <= 0 {
		return nil
	}
	ok, err := s.Throttle.Allow(ctx, string(typ)+":"+email, s.ResendCooldown)
	if err != nil {
		s.Log.Warn("otp throttle unavailable", zap.Error(err))
		return nil
	}
	if !ok {
		return fmt.Errorf("%w: wait before requesting another code", ErrTooManyRequests)
	}
	return nil
}

func (s *accountService) sendOTP(ctx context.Context, email, subject, code string) {
	body := fmt.Sprintf("Your OTP is: %s\nIt expires in %d minutes.", code, int(s.OTPTTL.Minutes()))
	if err := s.Mailer.Send(ctx, email, subject, body); err != nil {
		s.Log.Error("otp email failed", zap.String("subject", subject), zap.Error(err))
	}
}

func (s *accountService) awardProfileComplete(ctx context.Context, u *model.User) {
	if s.Rewards == nil || !u.IsActive || !u.ProfileComplete() {
		return
	}
	_, err := s.Rewards.Award(ctx, u.ID, model.ActivityProfileComplete, "", "Profile completed")
	if err != nil && !errors.Is(err, ErrAlreadyAwarded) {
		s.Log.Warn("profile reward failed", zap.String("user_id", u.ID), zap.Error(err))
	}
}
