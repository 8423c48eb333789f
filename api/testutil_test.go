package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/bloglist-backend/auth"
	"github.com/rpupo63/bloglist-backend/database"
	"github.com/rpupo63/bloglist-backend/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSecret = []byte("test-secret")

// newTestServer builds a router backed by a fresh in-memory sqlite
// database. Each call gets its own database.
func newTestServer(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	d := database.New(db)
	router := newRouter(d, withConfig(map[string]string{}), withSecret(testSecret), withStartupTime(time.Now()))
	return router, d
}

// createTestUser inserts a user directly through the repo, bypassing
// the registration endpoint.
func createTestUser(t *testing.T, d database.Database, username, name, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
	}
	require.NoError(t, d.UserRepo().Add(user))
	return user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	tok, err := auth.NewToken(user.ID.String(), user.Username, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

// claimlessToken signs a token that verifies but asserts no identity.
func claimlessToken(t *testing.T) string {
	t.Helper()

	tok, err := auth.NewToken("", "", testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

// doRequest performs a request against the router. A non-nil body is
// JSON-encoded; a non-empty token is sent as a bearer credential.
func doRequest(t *testing.T, router *chi.Mux, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

func mustStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, recorder.Code, "unexpected status, body: %s", recorder.Body.String())
}
