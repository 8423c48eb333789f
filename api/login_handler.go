package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/bloglist-backend/auth"
	"github.com/rpupo63/bloglist-backend/database"
	"github.com/rpupo63/bloglist-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type loginHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	secret    []byte
	tokenTTL  time.Duration
}

func newLoginHandler(userRepo *database.UserRepo, secret []byte, tokenTTL time.Duration) loginHandler {
	logger := log.With().Str("handlerName", "loginHandler").Logger()

	return loginHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// login checks credentials and issues a signed bearer token
// @Summary Log in
// @Description Verifies username and password and returns a signed bearer token
// @Tags Login
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Issued token"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed payload"
// @Failure 401 {object} ErrorResponse "Unauthorized - Wrong username or password"
// @Router /api/login [post]
func (h loginHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req LoginRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		user, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		// Same response for unknown user and wrong password
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			h.responder.WriteError(w, errs.NewWrongCredentialsError())
			return
		}

		token, err := auth.NewToken(user.ID.String(), user.Username, h.secret, h.tokenTTL)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{
			Token:    token,
			Username: user.Username,
			Name:     user.Name,
		})
	}
}
