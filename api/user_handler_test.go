package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/bloglist-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	router, d := newTestServer(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{
		"username": "ann",
		"name":     "Ann Example",
		"password": "sekret",
	}, "")
	mustStatus(t, recorder, http.StatusCreated)

	created := decodeBody[models.User](t, recorder)
	assert.Equal(t, "ann", created.Username)
	assert.Equal(t, "Ann Example", created.Name)
	assert.NotContains(t, recorder.Body.String(), "sekret")
	assert.NotContains(t, recorder.Body.String(), "passwordHash")

	// The stored hash is a real bcrypt hash, not the plaintext
	stored, err := d.UserRepo().FindByUsername("ann")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "sekret", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestCreateUser_Validation(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t)

	for name, payload := range map[string]map[string]any{
		"short username":   {"username": "ab", "password": "sekret"},
		"short password":   {"username": "ann", "password": "ab"},
		"missing username": {"password": "sekret"},
		"missing password": {"username": "ann"},
	} {
		recorder := doRequest(t, router, http.MethodPost, "/api/users", payload, "")
		require.Equalf(t, http.StatusBadRequest, recorder.Code, "%s should be rejected, body: %s", name, recorder.Body.String())
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()

	router, d := newTestServer(t)
	createTestUser(t, d, "ann", "", "sekret")

	recorder := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{
		"username": "ann",
		"password": "other",
	}, "")
	mustStatus(t, recorder, http.StatusConflict)
}

func TestGetAllUsers(t *testing.T) {
	t.Parallel()

	router, d := newTestServer(t)
	ann := createTestUser(t, d, "ann", "Ann Example", "sekret")

	blog := &models.Blog{Title: "T", URL: "U", OwnerID: ann.ID}
	require.NoError(t, d.BlogRepo().Add(blog))

	recorder := doRequest(t, router, http.MethodGet, "/api/users", nil, "")
	mustStatus(t, recorder, http.StatusOK)

	users := decodeBody[[]models.User](t, recorder)
	require.Len(t, users, 1)
	assert.Equal(t, "ann", users[0].Username)
	require.Len(t, users[0].Blogs, 1)
	assert.Equal(t, blog.ID, users[0].Blogs[0].ID)

	assert.NotContains(t, recorder.Body.String(), ann.PasswordHash)
}
