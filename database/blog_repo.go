package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/bloglist-backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blogs with their owner preloaded. Ordering is
// whatever the store returns.
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Preload("Owner").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by its ID, or nil if no such blog exists.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Owner").First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// ReplaceFields overwrites the four mutable fields of the blog
// identified by id. Ownership is never part of the write. The map form
// is deliberate: gorm's struct updates skip zero values, and this
// update must clear fields the caller left empty.
func (r *BlogRepo) ReplaceFields(id uuid.UUID, title, author, url string, likes int) error {
	return r.db.Model(&models.Blog{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":  title,
		"author": author,
		"url":    url,
		"likes":  likes,
	}).Error
}

// Delete removes a blog from the database by id
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}
