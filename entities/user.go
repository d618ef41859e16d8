package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Password    string    `json:"-"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Role        string    `json:"role"`
	IsVerified  bool      `json:"is_verified"`

	Timestamp
}
