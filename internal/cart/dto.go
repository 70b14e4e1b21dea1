package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO is the transport shape for a cart.
type CartDTO struct {
	UserID    uuid.UUID       `json:"user_id"`
	Lines     []Line          `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AddItemRequest adds one product/size pair to the cart. Quantity is
// optional and defaults to 1.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	SizeLabel string `json:"size_label"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// RemoveItemRequest drops one product/size pair from the cart.
type RemoveItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	SizeLabel string `json:"size_label"`
}

// CheckoutRequest carries the contact snapshot collected at checkout.
type CheckoutRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required"`
	CustomerEmail   string  `json:"customer_email" validate:"required,email"`
	CustomerPhone   string  `json:"customer_phone" validate:"required"`
	CustomerAddress string  `json:"customer_address" validate:"required"`
	PaymentRef      *string `json:"payment_ref"`
}

func toDTO(cart *Cart) *CartDTO {
	if cart == nil {
		return nil
	}
	return &CartDTO{
		UserID:    cart.UserID,
		Lines:     cart.Lines,
		Total:     cart.Total(),
		UpdatedAt: cart.UpdatedAt,
	}
}
