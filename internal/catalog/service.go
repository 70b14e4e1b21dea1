package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hashimadil/storefront-backend/pkg/db/models"
	"github.com/hashimadil/storefront-backend/pkg/enums"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
)

// Service defines the catalog behavior needed by the controllers.
type Service interface {
	ListPublic(ctx context.Context) ([]ProductDTO, error)
	ListAll(ctx context.Context) ([]ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo ProductRepository
	tx   txRunner
}

// ServiceParams bundles the catalog service dependencies.
type ServiceParams struct {
	Repo ProductRepository
	Tx   txRunner
}

// NewService constructs the catalog service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{repo: params.Repo, tx: params.Tx}, nil
}

// ListPublic returns only products shoppers may see.
func (s *service) ListPublic(ctx context.Context) ([]ProductDTO, error) {
	status := enums.ProductStatusActive
	products, err := s.repo.List(ctx, &status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return FromModels(products), nil
}

// ListAll returns every product regardless of status.
func (s *service) ListAll(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return FromModels(products), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return FromModel(product), nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}

	status := enums.ProductStatusDraft
	if req.Status != "" {
		parsed, err := enums.ParseProductStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		status = parsed
	}

	productID := uuid.New()
	product := &models.Product{
		ID:          productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Status:      status,
		Sizes:       sizeModels(productID, req.Sizes),
		Images:      imageModels(productID, req.Images),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return FromModel(created), nil
}

// Update patches scalar fields and replaces sizes/images when provided,
// all within one transaction.
func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	values := map[string]any{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.LessThanOrEqual(decimal.Zero) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
		values["price"] = *req.Price
	}
	if req.Category != nil {
		values["category"] = *req.Category
	}
	if req.Status != nil {
		parsed, err := enums.ParseProductStatus(*req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		values["status"] = parsed
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.UpdateColumns(ctx, id, values); err != nil {
			return err
		}
		if req.Sizes != nil {
			if err := txRepo.ReplaceSizes(ctx, id, sizeModels(id, req.Sizes)); err != nil {
				return err
			}
		}
		if req.Images != nil {
			if err := txRepo.ReplaceImages(ctx, id, imageModels(id, req.Images)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func sizeModels(productID uuid.UUID, inputs []SizeInput) []models.ProductSize {
	out := make([]models.ProductSize, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, models.ProductSize{
			ID:             uuid.New(),
			ProductID:      productID,
			SizeLabel:      in.SizeLabel,
			InventoryCount: in.InventoryCount,
		})
	}
	return out
}

func imageModels(productID uuid.UUID, inputs []ImageInput) []models.ProductImage {
	out := make([]models.ProductImage, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, models.ProductImage{
			ID:           uuid.New(),
			ProductID:    productID,
			ImageURL:     in.ImageURL,
			DisplayOrder: in.DisplayOrder,
		})
	}
	return out
}
