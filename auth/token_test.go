package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewTokenAndResolve_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := NewToken(userID, "ann", secret, time.Hour)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	gotUserID, err := ResolveToken(tok, secret)
	if err != nil {
		t.Fatalf("ResolveToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestResolveToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := NewToken("u1", "ann", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	_, err = ResolveToken(tok, secret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestResolveToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewToken("u2", "bob", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	_, err = ResolveToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestResolveToken_MissingIdentityClaim(t *testing.T) {
	t.Parallel()

	secret := []byte("k")

	// Structurally valid, signed, but no user identity claim.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ResolveToken(tok, secret)
	if !errors.Is(err, ErrMissingIdentityClaim) {
		t.Fatalf("expected ErrMissingIdentityClaim, got %v", err)
	}
}

func TestResolveToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ResolveToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestResolveToken_UnexpectedSigningMethod(t *testing.T) {
	t.Parallel()

	// alg=none is never acceptable regardless of the claim set.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u3"})
	tok, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ResolveToken(tok, []byte("k"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}
