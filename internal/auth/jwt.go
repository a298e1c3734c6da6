// Package auth issues and verifies JWTs, hashes passwords and one-time codes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"petcare/internal/config"
)

// Token types carried in the token_type claim.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// ErrInvalidToken is returned for malformed, expired or mistyped tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims are the claims signed into every token. Subject holds the user ID.
type TokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is returned on login and signup verification.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer signs access tokens and refresh tokens with separate HMAC secrets.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenIssuer builds an issuer from cfg. An empty RefreshSecret reuses Secret.
func NewTokenIssuer(cfg config.JWTConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	refresh := cfg.RefreshSecret
	if refresh == "" {
		refresh = cfg.Secret
	}
	return &TokenIssuer{
		accessSecret:  []byte(cfg.Secret),
		refreshSecret: []byte(refresh),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}, nil
}

// IssuePair signs a fresh access and refresh token for userID.
func (i *TokenIssuer) IssuePair(userID string) (*TokenPair, error) {
	access, err := i.sign(userID, TokenAccess, i.accessTTL, i.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := i.sign(userID, TokenRefresh, i.refreshTTL, i.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh validates a refresh token and returns a new access token.
func (i *TokenIssuer) Refresh(refreshToken string) (string, error) {
	claims, err := i.parse(refreshToken, TokenRefresh, i.refreshSecret)
	if err != nil {
		return "", err
	}
	return i.sign(claims.Subject, TokenAccess, i.accessTTL, i.accessSecret)
}

// ParseAccess validates an access token and returns the user ID it was issued for.
func (i *TokenIssuer) ParseAccess(token string) (string, error) {
	claims, err := i.parse(token, TokenAccess, i.accessSecret)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (i *TokenIssuer) sign(userID, typ string, ttl time.Duration, secret []byte) (string, error) {
	now := i.now()
	claims := TokenClaims{
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (i *TokenIssuer) parse(token, typ string, secret []byte) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.TokenType != typ || claims.Subject == "" {
		return nil, fmt.Errorf("%w: wrong token type", ErrInvalidToken)
	}
	return claims, nil
}
