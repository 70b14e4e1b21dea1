package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hashimadil/storefront-backend/internal/catalog"
	"github.com/hashimadil/storefront-backend/internal/orders"
	"github.com/hashimadil/storefront-backend/pkg/enums"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	"github.com/hashimadil/storefront-backend/pkg/metrics"
)

const (
	msgStoreClosed = "the store is currently closed"
	msgEmptyCart   = "your cart is empty"
)

// Service drives the cart lifecycle from first add through checkout.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, req RemoveItemRequest) (*CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error)
}

type productReader interface {
	Get(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error)
}

type orderPlacer interface {
	Create(ctx context.Context, input orders.CreateOrderInput) (*orders.OrderDTO, error)
}

type storeStatus interface {
	IsStoreOpen(ctx context.Context) (bool, error)
}

type service struct {
	store    Store
	products productReader
	orders   orderPlacer
	status   storeStatus
	checkout *metrics.CheckoutMetrics
}

// ServiceParams bundles the cart service dependencies. Metrics may be nil.
type ServiceParams struct {
	Store    Store
	Products productReader
	Orders   orderPlacer
	Status   storeStatus
	Metrics  *metrics.CheckoutMetrics
}

// NewService constructs the cart service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product reader is required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order placer is required")
	}
	if params.Status == nil {
		return nil, fmt.Errorf("store status is required")
	}
	return &service{
		store:    params.Store,
		products: params.Products,
		orders:   params.Orders,
		status:   params.Status,
		checkout: params.Metrics,
	}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return toDTO(cart), nil
}

// AddItem snapshots the product's current name and price into the cart
// line. Repeated adds of the same product/size pair merge by quantity,
// and a zero quantity means one. Adding is gated on the store being
// open, same as checkout.
func (s *service) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error) {
	if req.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	open, err := s.status.IsStoreOpen(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check store status")
	}
	if !open {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, msgStoreClosed)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != enums.ProductStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
	}
	if req.SizeLabel != "" && !hasSize(product, req.SizeLabel) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size not offered for this product")
	}

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	cart.Add(Line{
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		SizeLabel:   req.SizeLabel,
		Quantity:    quantity,
		UnitPrice:   product.Price,
	})

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return toDTO(cart), nil
}

func (s *service) RemoveItem(ctx context.Context, userID uuid.UUID, req RemoveItemRequest) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	cart.Remove(req.ProductID, req.SizeLabel)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return toDTO(cart), nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}

// Checkout turns the cart into an order. The guards run in a fixed order
// so the shopper always learns the most actionable problem first: store
// closed, then empty cart. The cart is cleared only after the order has
// been committed.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error) {
	open, err := s.status.IsStoreOpen(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check store status")
	}
	if !open {
		s.checkout.IncCheckoutFailure("store_closed")
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, msgStoreClosed)
	}

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if cart.IsEmpty() {
		s.checkout.IncCheckoutFailure("empty_cart")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgEmptyCart)
	}

	items := make([]orders.ItemInput, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, orders.ItemInput{
			ProductID:       line.ProductID,
			SizeLabel:       line.SizeLabel,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.UnitPrice,
		})
	}

	order, err := s.orders.Create(ctx, orders.CreateOrderInput{
		UserID: &userID,
		Customer: orders.CustomerInput{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			TotalAmount:     cart.Total(),
			PaymentRef:      req.PaymentRef,
		},
		Items: items,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Clear(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart after checkout")
	}
	return order, nil
}

func hasSize(product *catalog.ProductDTO, sizeLabel string) bool {
	for _, size := range product.Sizes {
		if size.SizeLabel == sizeLabel {
			return true
		}
	}
	return false
}
