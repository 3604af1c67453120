package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifierUserID(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid token", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateToken("secret", 42)
		require.NoError(t, err)

		v := NewJWTVerifier("secret")
		userID, err := v.UserID(token)

		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("accepts a bearer-prefixed token", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateToken("secret", 7)
		require.NoError(t, err)

		v := NewJWTVerifier("secret")
		userID, err := v.UserID("Bearer " + token)

		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("missing header fails verification", func(t *testing.T) {
		t.Parallel()

		v := NewJWTVerifier("secret")
		_, err := v.UserID("")

		var verr *VerificationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("wrong secret fails verification", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateToken("other-secret", 42)
		require.NoError(t, err)

		v := NewJWTVerifier("secret")
		_, err = v.UserID(token)

		var verr *VerificationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("expired token fails verification", func(t *testing.T) {
		t.Parallel()

		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			UserID: 42,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		v := NewJWTVerifier("secret")
		_, err = v.UserID(token)

		var verr *VerificationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("token without user id fails verification", func(t *testing.T) {
		t.Parallel()

		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		v := NewJWTVerifier("secret")
		_, err = v.UserID(token)

		var verr *VerificationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects non-hmac signing methods", func(t *testing.T) {
		t.Parallel()

		token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 42})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		v := NewJWTVerifier("secret")
		_, err = v.UserID(signed)

		var verr *VerificationError
		assert.ErrorAs(t, err, &verr)
	})
}
