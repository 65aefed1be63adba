package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAccessGate_Verify(t *testing.T) {
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	argonHash, err := HashAccessCode("open-sesame")
	require.NoError(t, err)

	tests := []struct {
		name    string
		stored  string
		code    string
		wantErr error
	}{
		{"plaintext match", "open-sesame", "open-sesame", nil},
		{"plaintext match with whitespace", " open-sesame ", "open-sesame\n", nil},
		{"plaintext mismatch", "open-sesame", "open-sesam", ErrInvalidAccessCode},
		{"bcrypt match", string(bcryptHash), "open-sesame", nil},
		{"bcrypt mismatch", string(bcryptHash), "nope", ErrInvalidAccessCode},
		{"argon2 match", argonHash, "open-sesame", nil},
		{"argon2 mismatch", argonHash, "nope", ErrInvalidAccessCode},
		{"not configured", "", "anything", ErrAccessNotConfigured},
		{"corrupt argon2", "$argon2id$v=19$broken", "x", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewAccessGate(config.AccessConfig{Code: tt.stored, TokenSecret: testSecret})
			err := gate.Verify(tt.code)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAccessGate_Tokens(t *testing.T) {
	gate := NewAccessGate(config.AccessConfig{Code: "c", TokenSecret: testSecret, TokenTTL: time.Hour})

	token, expiresAt, err := gate.IssueToken()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := gate.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, DashboardSubject, claims.Subject)
	assert.NotEmpty(t, claims.ID)

	t.Run("tampered", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		parts[2] = strings.Repeat("A", len(parts[2]))
		_, err := gate.ValidateToken(strings.Join(parts, "."))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewAccessGate(config.AccessConfig{Code: "c", TokenSecret: strings.Repeat("z", 32)})
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		gate.tokens.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { gate.tokens.now = time.Now }()
		_, err := gate.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "ezhelp",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = gate.ValidateToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: DashboardSubject}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = gate.ValidateToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAccessGate_NoSecret(t *testing.T) {
	gate := NewAccessGate(config.AccessConfig{Code: "c"})
	_, _, err := gate.IssueToken()
	assert.ErrorIs(t, err, ErrMissingTokenSecret)
	_, err = gate.ValidateToken("x")
	assert.ErrorIs(t, err, ErrMissingTokenSecret)
}
