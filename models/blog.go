package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog represents a single blog post. Every persisted blog references
// exactly one owning user; OwnerID is set at creation and never changed
// by an update.
type Blog struct {
	ID      uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title   string    `json:"title" db:"title" gorm:"type:text;not null"`
	Author  string    `json:"author,omitempty" db:"author" gorm:"type:text"`
	URL     string    `json:"url" db:"url" gorm:"type:text;not null"`
	Likes   int       `json:"likes" db:"likes" gorm:"type:integer;not null;default:0"`
	OwnerID uuid.UUID `json:"ownerId" db:"owner_id" gorm:"type:uuid;not null;index:idx_blog_owner_id"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
