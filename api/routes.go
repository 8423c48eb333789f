package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes sets up all routes. Mutating blog routes that need a
// caller identity sit behind the bearer-token middleware; updateBlog
// deliberately does not (see the handler).
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog endpoints
		r.Get("/api/blogs", handlers.blogHandler.getAllBlogs())
		r.Put("/api/blogs/{blogID}", handlers.blogHandler.updateBlog())

		// User & login endpoints
		r.Get("/api/users", handlers.userHandler.getAllUsers())
		r.Post("/api/users", handlers.userHandler.createUser())
		r.Post("/api/login", handlers.loginHandler.login())

		// Token-carrying blog endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireToken)
			r.Post("/api/blogs", handlers.blogHandler.createBlog())
			r.Delete("/api/blogs/{blogID}", handlers.blogHandler.deleteBlog())
		})
	})
}
