package errs

import (
	"errors"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

// Authentication & Authorization Errors
var (
	ErrMissingToken         = errors.New("missing access token")
	ErrInvalidToken         = errors.New("invalid token")
	ErrMissingIdentityClaim = errors.New("token missing id")
	ErrNotOwner             = errors.New("not the owner of this resource")
	ErrWrongCredentials     = errors.New("invalid username or password")
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// Authentication & Authorization Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Missing access token",
		Field:      "authorization",
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Invalid access token",
		Field:      "authorization",
	}
}

// NewMissingIdentityClaimError reports a token that verified but
// carries no user identity. Distinct from NewInvalidTokenError so
// clients can tell a structurally valid but incomplete token apart
// from a forged or expired one.
func NewMissingIdentityClaimError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingIdentityClaim,
		Details:    "Token carries no user identity",
		Field:      "authorization",
	}
}

// NewNotOwnerError reports an authenticated caller that is not the
// owner of the resource it tried to mutate.
func NewNotOwnerError(resource string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrNotOwner,
		Details:    "Cannot modify a " + resource + " that is not yours",
		Field:      "authorization",
	}
}

func NewWrongCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrWrongCredentials,
		Field:      "authorization",
	}
}

// Authentication & Authorization Error Type Checkers
func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsMissingIdentityClaimError(err error) bool {
	return errors.Is(err, ErrMissingIdentityClaim)
}

func IsNotOwnerError(err error) bool {
	return errors.Is(err, ErrNotOwner)
}
