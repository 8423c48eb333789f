package api

import (
	"context"
	"errors"
)

type keyType string

const (
	tokenKey keyType = "token"
)

// ctxWithToken adds the raw bearer token to the context
func ctxWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// ctxGetToken retrieves the raw bearer token from the context
func ctxGetToken(ctx context.Context) (string, error) {
	if ctxValue := ctx.Value(tokenKey); ctxValue == nil {
		return "", errors.New("key not found in context")
	} else if valueAsString, ok := ctxValue.(string); !ok {
		return "", errors.New("value is not of type `string`")
	} else {
		return valueAsString, nil
	}
}
