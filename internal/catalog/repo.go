package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hashimadil/storefront-backend/pkg/db/models"
	"github.com/hashimadil/storefront-backend/pkg/enums"
)

// ProductRepository defines the persistence surface required by the catalog service.
type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, status *enums.ProductStatus) ([]models.Product, error)
	UpdateColumns(ctx context.Context, id uuid.UUID, values map[string]any) error
	ReplaceSizes(ctx context.Context, productID uuid.UUID, sizes []models.ProductSize) error
	ReplaceImages(ctx context.Context, productID uuid.UUID, images []models.ProductImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository wires together product persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) ProductRepository {
	return &Repository{db: tx}
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("size_label ASC")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		})
}

// Create inserts the product together with its sizes and images.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID loads the product with its sizes and images.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := withAssociations(r.db.WithContext(ctx)).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status *enums.ProductStatus) ([]models.Product, error) {
	qb := withAssociations(r.db.WithContext(ctx)).Order("created_at DESC")
	if status != nil {
		qb = qb.Where("status = ?", *status)
	}
	var out []models.Product
	if err := qb.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateColumns patches scalar product fields.
func (r *Repository) UpdateColumns(ctx context.Context, id uuid.UUID, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(values).Error
}

// ReplaceSizes replaces all size rows for the product.
func (r *Repository) ReplaceSizes(ctx context.Context, productID uuid.UUID, sizes []models.ProductSize) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductSize{}).Error; err != nil {
		return err
	}
	if len(sizes) == 0 {
		return nil
	}
	return tx.Create(&sizes).Error
}

// ReplaceImages replaces all image rows for the product.
func (r *Repository) ReplaceImages(ctx context.Context, productID uuid.UUID, images []models.ProductImage) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	return tx.Create(&images).Error
}

// Delete removes the product; sizes and images cascade at the DB level.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
