package orders

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
	"github.com/hashimadil/storefront-backend/pkg/metrics"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the order operations exposed to controllers.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context) ([]OrderDTO, error)
	ListItems(ctx context.Context) ([]OrderItemDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	tx       txRunner
	checkout *metrics.CheckoutMetrics
}

// ServiceParams bundles the order service dependencies. Metrics may be nil.
type ServiceParams struct {
	Repo    Repository
	Tx      txRunner
	Metrics *metrics.CheckoutMetrics
}

// NewService builds an order service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:     params.Repo,
		tx:       params.Tx,
		checkout: params.Metrics,
	}, nil
}

// Create persists the order header and all line items in one transaction.
// The stated total must equal the recomputed sum of quantity times the
// snapshotted unit price; a client cannot understate its own total.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	if len(input.Items) == 0 {
		s.checkout.IncCheckoutFailure("no_items")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	computed := decimal.Zero
	for _, item := range input.Items {
		if item.Quantity < 1 {
			s.checkout.IncCheckoutFailure("bad_quantity")
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be at least 1")
		}
		if item.PriceAtPurchase.LessThan(decimal.Zero) {
			s.checkout.IncCheckoutFailure("bad_price")
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
		}
		computed = computed.Add(item.PriceAtPurchase.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !computed.Equal(input.Customer.TotalAmount) {
		s.checkout.IncCheckoutFailure("total_mismatch")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "total amount does not match line items").
			WithDetails(map[string]string{
				"stated":   input.Customer.TotalAmount.StringFixed(2),
				"computed": computed.StringFixed(2),
			})
	}

	orderID := uuid.New()
	order := &models.Order{
		ID:              orderID,
		UserID:          input.UserID,
		CustomerName:    input.Customer.CustomerName,
		CustomerEmail:   input.Customer.CustomerEmail,
		CustomerPhone:   input.Customer.CustomerPhone,
		CustomerAddress: input.Customer.CustomerAddress,
		Status:          enums.OrderStatusPending,
		TotalAmount:     computed,
		PaymentRef:      input.Customer.PaymentRef,
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		items = append(items, models.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			ProductID:       in.ProductID,
			SizeLabel:       in.SizeLabel,
			Quantity:        in.Quantity,
			PriceAtPurchase: in.PriceAtPurchase,
		})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.CreateOrder(ctx, order); err != nil {
			return err
		}
		return txRepo.CreateOrderItems(ctx, items)
	})
	if err != nil {
		s.checkout.IncCheckoutFailure("persistence")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
	}

	s.checkout.IncOrderCreated(order.Status.String())
	value, _ := computed.Float64()
	s.checkout.ObserveOrderValue(value)

	order.Items = items
	return FromModel(order), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context) ([]OrderDTO, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return FromModels(out), nil
}

func (s *service) ListItems(ctx context.Context) ([]OrderItemDTO, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list order items")
	}
	return FromItemModels(items), nil
}

// UpdateStatus applies an enum-validated lifecycle change and returns the
// refreshed order.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderDTO, error) {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	affected, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete order")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return nil
}
