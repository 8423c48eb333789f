package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed tokens, bad signatures and
	// expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingIdentityClaim means the token verified but carries no
	// user identity. Kept distinct from ErrInvalidToken so the API can
	// report it separately.
	ErrMissingIdentityClaim = errors.New("token missing id")
)

// Claims is the payload of a bearer token. UserID is the subject
// identity the ownership checks run against.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
}

// NewToken issues a signed HS256 token for the given user.
func NewToken(userID, username string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(secret)
}

// ResolveToken verifies tokenString against secret and returns the user
// identity it asserts. It does not check that the user still exists;
// that is the caller's job when it needs the full record.
func ResolveToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.UserID == "" {
		return "", ErrMissingIdentityClaim
	}

	return claims.UserID, nil
}
