package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hashimadil/storefront-backend/pkg/db/models"
	"github.com/hashimadil/storefront-backend/pkg/enums"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
)

type stubRepo struct {
	products map[uuid.UUID]*models.Product
	replaced struct {
		sizes  []models.ProductSize
		images []models.ProductImage
	}
}

func newStubRepo() *stubRepo {
	return &stubRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (s *stubRepo) WithTx(tx *gorm.DB) ProductRepository { return s }

func (s *stubRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	s.products[product.ID] = product
	return product, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(ctx context.Context, status *enums.ProductStatus) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if status != nil && p.Status != *status {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubRepo) UpdateColumns(ctx context.Context, id uuid.UUID, values map[string]any) error {
	p, ok := s.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := values["name"].(string); ok {
		p.Name = name
	}
	if price, ok := values["price"].(decimal.Decimal); ok {
		p.Price = price
	}
	if status, ok := values["status"].(enums.ProductStatus); ok {
		p.Status = status
	}
	return nil
}

func (s *stubRepo) ReplaceSizes(ctx context.Context, productID uuid.UUID, sizes []models.ProductSize) error {
	s.replaced.sizes = sizes
	if p, ok := s.products[productID]; ok {
		p.Sizes = sizes
	}
	return nil
}

func (s *stubRepo) ReplaceImages(ctx context.Context, productID uuid.UUID, images []models.ProductImage) error {
	s.replaced.images = images
	if p, ok := s.products[productID]; ok {
		p.Images = images
	}
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.products, id)
	return nil
}

type stubTx struct {
	calls int
}

func (s *stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.calls++
	return fn(nil)
}

func newTestService(t *testing.T, repo ProductRepository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, Tx: &stubTx{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateAssignsIDsAndDefaultsStatus(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(t, repo)

	result, err := svc.Create(context.Background(), CreateProductRequest{
		Name:  "Oversized Tee",
		Price: decimal.NewFromInt(45),
		Sizes: []SizeInput{
			{SizeLabel: "M", InventoryCount: 10},
			{SizeLabel: "L", InventoryCount: 5},
		},
		Images: []ImageInput{{ImageURL: "https://cdn.example.com/tee.jpg"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if result.Status != enums.ProductStatusDraft {
		t.Fatalf("expected draft default, got %s", result.Status)
	}
	if result.ID == uuid.Nil {
		t.Fatal("expected product id to be assigned")
	}
	for _, size := range result.Sizes {
		if size.ID == uuid.Nil {
			t.Fatal("expected size id to be assigned")
		}
	}
	if len(result.Images) != 1 {
		t.Fatalf("expected one image, got %d", len(result.Images))
	}
}

func TestCreateRejectsNonPositivePrice(t *testing.T) {
	svc := newTestService(t, newStubRepo())

	_, err := svc.Create(context.Background(), CreateProductRequest{
		Name:  "Freebie",
		Price: decimal.Zero,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListPublicFiltersToActive(t *testing.T) {
	repo := newStubRepo()
	active := &models.Product{ID: uuid.New(), Name: "Hoodie", Status: enums.ProductStatusActive}
	draft := &models.Product{ID: uuid.New(), Name: "Sample", Status: enums.ProductStatusDraft}
	repo.products[active.ID] = active
	repo.products[draft.ID] = draft
	svc := newTestService(t, repo)

	result, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(result) != 1 || result[0].Name != "Hoodie" {
		t.Fatalf("expected only active product, got %+v", result)
	}
}

func TestGetUnknownProductReturnsNotFound(t *testing.T) {
	svc := newTestService(t, newStubRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateReplacesSizesOnlyWhenProvided(t *testing.T) {
	repo := newStubRepo()
	id := uuid.New()
	repo.products[id] = &models.Product{
		ID:     id,
		Name:   "Hoodie",
		Price:  decimal.NewFromInt(80),
		Status: enums.ProductStatusActive,
		Sizes:  []models.ProductSize{{ID: uuid.New(), ProductID: id, SizeLabel: "M"}},
	}
	svc := newTestService(t, repo)

	name := "Heavy Hoodie"
	if _, err := svc.Update(context.Background(), id, UpdateProductRequest{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.replaced.sizes != nil {
		t.Fatal("expected sizes untouched when not provided")
	}

	_, err := svc.Update(context.Background(), id, UpdateProductRequest{
		Sizes: []SizeInput{{SizeLabel: "S", InventoryCount: 3}},
	})
	if err != nil {
		t.Fatalf("update with sizes: %v", err)
	}
	if len(repo.replaced.sizes) != 1 || repo.replaced.sizes[0].SizeLabel != "S" {
		t.Fatalf("expected sizes replaced, got %+v", repo.replaced.sizes)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	repo := newStubRepo()
	id := uuid.New()
	repo.products[id] = &models.Product{ID: id, Name: "Hoodie", Price: decimal.NewFromInt(80)}
	svc := newTestService(t, repo)

	bad := "retired"
	_, err := svc.Update(context.Background(), id, UpdateProductRequest{Status: &bad})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteUnknownProductReturnsNotFound(t *testing.T) {
	svc := newTestService(t, newStubRepo())

	err := svc.Delete(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
