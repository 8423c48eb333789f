package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/bloglist-backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	router, d := newTestServer(t)
	ann := createTestUser(t, d, "ann", "Ann Example", "sekret")

	recorder := doRequest(t, router, http.MethodPost, "/api/login", map[string]any{
		"username": "ann",
		"password": "sekret",
	}, "")
	mustStatus(t, recorder, http.StatusOK)

	response := decodeBody[LoginResponse](t, recorder)
	assert.Equal(t, "ann", response.Username)
	assert.Equal(t, "Ann Example", response.Name)
	require.NotEmpty(t, response.Token)

	// The issued token resolves back to ann's id
	userID, err := auth.ResolveToken(response.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, ann.ID.String(), userID)
}

func TestLogin_IssuedTokenAuthorizesCreate(t *testing.T) {
	t.Parallel()

	router, d := newTestServer(t)
	createTestUser(t, d, "ann", "", "sekret")

	recorder := doRequest(t, router, http.MethodPost, "/api/login", map[string]any{
		"username": "ann",
		"password": "sekret",
	}, "")
	mustStatus(t, recorder, http.StatusOK)
	token := decodeBody[LoginResponse](t, recorder).Token

	recorder = doRequest(t, router, http.MethodPost, "/api/blogs", map[string]any{
		"title": "T",
		"url":   "U",
	}, token)
	mustStatus(t, recorder, http.StatusCreated)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	router, d := newTestServer(t)
	createTestUser(t, d, "ann", "", "sekret")

	recorder := doRequest(t, router, http.MethodPost, "/api/login", map[string]any{
		"username": "ann",
		"password": "wrong",
	}, "")
	mustStatus(t, recorder, http.StatusUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/login", map[string]any{
		"username": "nobody",
		"password": "sekret",
	}, "")
	mustStatus(t, recorder, http.StatusUnauthorized)
}
