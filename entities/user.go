package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	IsVerified bool      `json:"is_verified"`

	Children []*Child `gorm:"foreignKey:UserID"`
	Timestamp
}
