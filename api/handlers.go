package api

import (
	"time"

	"github.com/rpupo63/bloglist-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, secret []byte, tokenTTL time.Duration) *routeHandlers {
	return &routeHandlers{
		blogHandler:  newBlogHandler(database.BlogRepo(), database.UserRepo(), secret),
		userHandler:  newUserHandler(database.UserRepo()),
		loginHandler: newLoginHandler(database.UserRepo(), secret, tokenTTL),
	}
}
