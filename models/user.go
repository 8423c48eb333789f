package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account that can own blogs.
// PasswordHash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username     string    `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Name         string    `json:"name,omitempty" db:"name" gorm:"type:text"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Blogs        []Blog    `json:"blogs,omitempty" gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the ID application-side so the model works on
// both the postgres and sqlite drivers.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserSummary is the projection of a User attached to blogs in responses:
// identifier, username and display name only.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
}

// Summary returns the owner projection for this user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Name: u.Name}
}
