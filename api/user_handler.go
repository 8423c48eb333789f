package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rpupo63/bloglist-backend/database"
	"github.com/rpupo63/bloglist-backend/errs"
	"github.com/rpupo63/bloglist-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

// CreateUserRequest is the registration payload
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

const minCredentialLength = 3

// getAllUsers retrieves all users with the blogs they own
// @Summary Get all users
// @Description Retrieves all users with their owned blogs. Password hashes are never included.
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {array} models.User "List of users"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching users"
// @Router /api/users [get]
func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find users", "users", err))
			return
		}

		h.responder.WriteJSON(w, users)
	}
}

// createUser registers a new user
// @Summary Create user
// @Description Registers a new user. Username must be unique; username and password must be at least 3 characters.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid username or password"
// @Failure 409 {object} ErrorResponse "Conflict - Username already taken"
// @Router /api/users [post]
func (h userHandler) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req CreateUserRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode user request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("user", err))
			return
		}

		if len(req.Username) < minCredentialLength {
			h.responder.WriteError(w, errs.NewInvalidFieldError("username", "must be at least 3 characters"))
			return
		}

		if len(req.Password) < minCredentialLength {
			h.responder.WriteError(w, errs.NewInvalidFieldError("password", "must be at least 3 characters"))
			return
		}

		existing, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("username"))
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := models.User{
			Username:     req.Username,
			Name:         req.Name,
			PasswordHash: string(passwordHash),
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create user", "user", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, user)
	}
}
