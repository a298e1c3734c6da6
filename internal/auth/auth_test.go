package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare/internal/config"
)

func newIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	i, err := NewTokenIssuer(config.JWTConfig{
		Secret:        "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    2 * time.Hour,
	})
	require.NoError(t, err)
	return i
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	i := newIssuer(t)

	pair, err := i.IssuePair("user-1")
	require.NoError(t, err)

	uid, err := i.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	access, err := i.Refresh(pair.Refresh)
	require.NoError(t, err)
	uid, err = i.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestTokenIssuer_RejectsWrongType(t *testing.T) {
	i := newIssuer(t)
	pair, err := i.IssuePair("user-1")
	require.NoError(t, err)

	_, err = i.ParseAccess(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = i.Refresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Expired(t *testing.T) {
	i := newIssuer(t)
	i.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	pair, err := i.IssuePair("user-1")
	require.NoError(t, err)

	i.now = time.Now
	_, err = i.ParseAccess(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	i := newIssuer(t)
	claims := TokenClaims{TokenType: TokenAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = i.ParseAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer(config.JWTConfig{})
	assert.Error(t, err)
}

func TestHashSecret(t *testing.T) {
	h, err := HashSecret("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", h)
	assert.True(t, CheckSecret(h, "123456"))
	assert.False(t, CheckSecret(h, "654321"))
}

func TestGenerateOTP(t *testing.T) {
	for range 20 {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, code, OTPLength)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}
