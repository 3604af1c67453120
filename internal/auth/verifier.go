package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier extracts the calling platform user from an Authorization header.
type Verifier interface {
	UserID(authorizationHeader string) (int64, error)
}

// VerificationError reports a token that could not be verified. The gateway
// surfaces it unchanged; it is never reinterpreted as a credential problem.
type VerificationError struct {
	Reason string
	Err    error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *VerificationError) Unwrap() error { return e.Err }

// Claims carried by the platform's signed tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// JWTVerifier verifies HS256-signed platform tokens.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a verifier for tokens signed with secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// UserID verifies the Authorization header value and returns the numeric
// user identifier from its claims. The "Bearer " prefix is optional since
// the platform relays the header value as-is.
func (v *JWTVerifier) UserID(authorizationHeader string) (int64, error) {
	if authorizationHeader == "" {
		return 0, &VerificationError{Reason: "missing authorization header"}
	}

	tokenString := strings.TrimPrefix(authorizationHeader, "Bearer ")

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unsupported signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, &VerificationError{Reason: "invalid token", Err: err}
	}

	if claims.UserID == 0 {
		return 0, &VerificationError{Reason: "token carries no user id"}
	}

	return claims.UserID, nil
}

// GenerateToken signs a token for the given user. Used by the platform's
// dev tooling and by tests; the gateway itself only verifies.
func GenerateToken(secret string, userID int64) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "integration-platform",
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
