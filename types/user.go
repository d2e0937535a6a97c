package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id" yaml:"_id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username" yaml:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt" yaml:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Username = strings.TrimSpace(u.Username)
	return nil
}

type UserRequest struct {
	Username string `json:"username" validate:"required"`
}

// Normalize trims the username so blank names fail validation.
func (r *UserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r UserRequest) User() User {
	return User{Username: strings.TrimSpace(r.Username)}
}
