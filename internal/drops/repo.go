package drops

import (
	"context"

	"gorm.io/gorm"

	"github.com/hashimadil/storefront-backend/pkg/db/models"
)

// Repository persists drop-announcement signups.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a signups repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a signup row. Duplicate phone numbers surface as a
// unique-constraint error from the driver.
func (r *Repository) Create(ctx context.Context, signup *models.DropSignup) (*models.DropSignup, error) {
	if err := r.db.WithContext(ctx).Create(signup).Error; err != nil {
		return nil, err
	}
	return signup, nil
}

// List returns all signups, newest first.
func (r *Repository) List(ctx context.Context) ([]models.DropSignup, error) {
	var out []models.DropSignup
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
