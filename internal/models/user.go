package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleHero  = "hero"
	RoleAdmin = "admin"
)

func ValidRole(role string) bool {
	return role == RoleHero || role == RoleAdmin
}

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Character    string    `gorm:"size:100;not null" json:"character"`
	Role         string    `gorm:"size:20;not null;default:hero" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}

func (user *User) BeforeCreate(*gorm.DB) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return nil
}

// PublicUser is the view returned by the API. It never carries the
// password hash.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Character string `json:"character"`
	Role      string `json:"role"`
}

func (user *User) Public() PublicUser {
	return PublicUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Character: user.Character,
		Role:      user.Role,
	}
}
