package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hashimadil/storefront-backend/pkg/enums"
)

// User represents the canonical identity entity. Rows are created on first
// Google sign-in and never deleted by any exposed operation.
type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email       string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Name        string         `gorm:"column:name;not null"`
	PhoneNumber *string        `gorm:"column:phone_number"`
	Role        enums.UserRole `gorm:"column:role;type:text;not null;default:'user'"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
}
