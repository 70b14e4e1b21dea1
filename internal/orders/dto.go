package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hashimadil/storefront-backend/pkg/db/models"
	"github.com/hashimadil/storefront-backend/pkg/enums"
)

// OrderDTO is the transport shape for one checkout transaction.
type OrderDTO struct {
	ID              uuid.UUID         `json:"id"`
	UserID          *uuid.UUID        `json:"user_id,omitempty"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address"`
	Status          enums.OrderStatus `json:"status"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	PaymentRef      *string           `json:"payment_ref,omitempty"`
	Items           []OrderItemDTO    `json:"items"`
	CreatedAt       time.Time         `json:"created_at"`
}

// OrderItemDTO is one line within an order.
type OrderItemDTO struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	ProductID       string          `json:"product_id"`
	SizeLabel       string          `json:"size_label"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

// ItemInput is one inbound order line.
type ItemInput struct {
	ProductID       string          `json:"product_id" validate:"required"`
	SizeLabel       string          `json:"size_label"`
	Quantity        int             `json:"quantity" validate:"required,gte=1"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" validate:"required"`
}

// CustomerInput is the checkout contact snapshot.
type CustomerInput struct {
	CustomerName    string          `json:"customer_name" validate:"required"`
	CustomerEmail   string          `json:"customer_email" validate:"required,email"`
	CustomerPhone   string          `json:"customer_phone" validate:"required"`
	CustomerAddress string          `json:"customer_address" validate:"required"`
	TotalAmount     decimal.Decimal `json:"total_amount" validate:"required"`
	PaymentRef      *string         `json:"payment_ref"`
}

// CreateOrderRequest is the payload accepted by the order endpoint. Both
// halves are mandatory; an order with no lines is rejected outright.
type CreateOrderRequest struct {
	Order *CustomerInput `json:"order" validate:"required"`
	Items []ItemInput    `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderInput is the service-level shape after the HTTP layer has
// attached the acting user.
type CreateOrderInput struct {
	UserID   *uuid.UUID
	Customer CustomerInput
	Items    []ItemInput
}

// UpdateStatusRequest carries the new lifecycle state for an order.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}

	return &OrderDTO{
		ID:              o.ID,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		PaymentRef:      o.PaymentRef,
		Items:           FromItemModels(o.Items),
		CreatedAt:       o.CreatedAt,
	}
}

func FromModels(os []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(os))
	for i := range os {
		out = append(out, *FromModel(&os[i]))
	}
	return out
}

func FromItemModels(items []models.OrderItem) []OrderItemDTO {
	out := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItemDTO{
			ID:              item.ID,
			OrderID:         item.OrderID,
			ProductID:       item.ProductID,
			SizeLabel:       item.SizeLabel,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}
	return out
}
