package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User carries the display data the analytics layer attaches to derived
// records. Authentication lives outside this service; requests identify
// users by id.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DisplayName string    `gorm:"type:varchar(60);not null" json:"display_name"`
	AvatarURL   string    `gorm:"type:varchar(255)" json:"avatar_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for User model
func (*User) TableName() string {
	return "users"
}

// BeforeCreate sets up the model before creation
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the user model
func (u *User) Validate() error {
	if u.DisplayName == "" {
		return ErrInvalidDisplayName
	}
	return nil
}
