package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/bloglist-backend/auth"
	"github.com/rpupo63/bloglist-backend/database"
	"github.com/rpupo63/bloglist-backend/errs"
	"github.com/rpupo63/bloglist-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
	userRepo  *database.UserRepo
	secret    []byte
}

func newBlogHandler(blogRepo *database.BlogRepo, userRepo *database.UserRepo, secret []byte) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
		userRepo:  userRepo,
		secret:    secret,
	}
}

// BlogResponse is a blog annotated with the owner projection
type BlogResponse struct {
	ID      uuid.UUID           `json:"id"`
	Title   string              `json:"title"`
	Author  string              `json:"author,omitempty"`
	URL     string              `json:"url"`
	Likes   int                 `json:"likes"`
	OwnerID uuid.UUID           `json:"ownerId"`
	Owner   *models.UserSummary `json:"owner,omitempty"`
}

// BlogCollectionResponse represents multiple blogs
type BlogCollectionResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total,omitempty"`
}

func toBlogResponse(blog models.Blog) BlogResponse {
	response := BlogResponse{
		ID:      blog.ID,
		Title:   blog.Title,
		Author:  blog.Author,
		URL:     blog.URL,
		Likes:   blog.Likes,
		OwnerID: blog.OwnerID,
	}
	if blog.Owner != nil {
		summary := blog.Owner.Summary()
		response.Owner = &summary
	}
	return response
}

// resolveIdentity verifies the bearer token stashed by the middleware
// and returns the user id it asserts. Existence of the user is not
// checked here.
func (h blogHandler) resolveIdentity(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	token, err := ctxGetToken(r.Context())
	if err != nil {
		return uuid.Nil, errs.NewMissingTokenError()
	}

	userIDStr, err := auth.ResolveToken(token, h.secret)
	if err != nil {
		if errors.Is(err, auth.ErrMissingIdentityClaim) {
			return uuid.Nil, errs.NewMissingIdentityClaimError()
		}
		return uuid.Nil, errs.NewInvalidTokenError()
	}

	// An identity that is not a well-formed id can never match a stored
	// user, so it is reported the same way as a bad token.
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errs.NewInvalidTokenError()
	}

	return userID, nil
}

// getAllBlogs retrieves all blogs with their owner projection
// @Summary Get all blogs
// @Description Retrieves all blogs, each annotated with its owner's id, username and name
// @Tags Blogs
// @Accept json
// @Produce json
// @Success 200 {object} BlogCollectionResponse "List of blogs"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blogs"
// @Router /api/blogs [get]
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blogs", "blogs", err))
			return
		}

		blogResponses := make([]BlogResponse, 0, len(blogs))
		for _, blog := range blogs {
			blogResponses = append(blogResponses, toBlogResponse(*blog))
		}

		h.responder.WriteJSON(w, BlogCollectionResponse{
			Blogs: blogResponses,
			Total: len(blogResponses),
		})
	}
}

// createBlog creates a new blog owned by the caller
// @Summary Create blog
// @Description Creates a new blog owned by the user the bearer token resolves to
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blog body models.Blog true "Blog data"
// @Success 201 {object} BlogResponse "Created blog"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing title or url"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid or claim-less token"
// @Router /api/blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, apiErr := h.resolveIdentity(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var blog models.Blog
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&blog); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog", err))
			return
		}

		if blog.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		if blog.URL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url"))
			return
		}

		// Likes defaults to zero when omitted; a supplied value is
		// stored as-is.

		// The token asserts an identity but not that the account still
		// exists; creation needs the full record.
		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("token does not resolve to a known user"))
			return
		}

		// Ownership is fixed at creation time and never changed by an
		// update. Client-supplied ids are ignored.
		blog.ID = uuid.Nil
		blog.OwnerID = user.ID
		blog.Owner = nil

		if err := h.blogRepo.Add(&blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog", "blog", err))
			return
		}

		// Reload to pick up the owner projection
		createdBlog, err := h.blogRepo.FindByID(blog.ID)
		if err != nil || createdBlog == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created blog", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, toBlogResponse(*createdBlog))
	}
}

// updateBlog overwrites the mutable fields of an existing blog
// @Summary Update blog
// @Description Replaces title, author, url and likes on an existing blog. Fields absent from the payload are cleared. Ownership never changes.
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Param blog body models.Blog true "Updated blog data"
// @Success 200 {object} BlogResponse "Updated blog"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /api/blogs/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// No authentication or ownership check here. The delete path
		// requires the owner; update does not. That asymmetry is part
		// of the observed contract and is preserved rather than fixed.

		blogIDStr := chi.URLParam(r, "blogID")
		if blogIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogID"))
			return
		}

		blogID, err := uuid.Parse(blogIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		existingBlog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		if existingBlog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var blog models.Blog
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&blog); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog", err))
			return
		}

		// Full-field overwrite, not a partial patch: absent fields are
		// written as their zero values.
		if err := h.blogRepo.ReplaceFields(blogID, blog.Title, blog.Author, blog.URL, blog.Likes); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog", "blog", err))
			return
		}

		updatedBlog, err := h.blogRepo.FindByID(blogID)
		if err != nil || updatedBlog == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, toBlogResponse(*updatedBlog))
	}
}

// deleteBlog deletes a blog owned by the caller
// @Summary Delete blog
// @Description Deletes a blog. Only the owner may delete it.
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid token or not the owner"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /api/blogs/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The id is validated before the credential is resolved, so a
		// malformed id is always a 400 no matter what token came with it.
		blogIDStr := chi.URLParam(r, "blogID")
		if blogIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogID"))
			return
		}

		blogID, err := uuid.Parse(blogIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		userID, apiErr := h.resolveIdentity(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		if blog.OwnerID != userID {
			h.responder.WriteError(w, errs.NewNotOwnerError("blog"))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog", "blog", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
