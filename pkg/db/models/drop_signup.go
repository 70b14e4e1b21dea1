package models

import (
	"time"

	"github.com/google/uuid"
)

// DropSignup captures a phone number for drop announcements. Unrelated to
// the order flow.
type DropSignup struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(20);not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
