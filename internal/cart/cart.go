package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one product/size pair in a cart. Quantity aggregates repeated
// adds of the same pair.
type Line struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SizeLabel   string          `json:"size_label"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Cart is the per-user working set between browsing and checkout. It is
// keyed by user, never shared, and survives only in its Store.
type Cart struct {
	UserID    uuid.UUID `json:"user_id"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCart returns an empty cart for the user.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{UserID: userID, Lines: []Line{}, UpdatedAt: time.Now().UTC()}
}

// Add merges the line into the cart. An existing line with the same
// product and size has its quantity incremented; otherwise the line is
// appended.
func (c *Cart) Add(line Line) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID && c.Lines[i].SizeLabel == line.SizeLabel {
			c.Lines[i].Quantity += line.Quantity
			c.touch()
			return
		}
	}
	c.Lines = append(c.Lines, line)
	c.touch()
}

// Remove drops the line matching the exact product/size pair. Removing an
// absent pair is a no-op.
func (c *Cart) Remove(productID, sizeLabel string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].SizeLabel == sizeLabel {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.touch()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.touch()
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total sums quantity times unit price across all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Clone returns a deep copy so stores can hand out isolated snapshots.
func (c *Cart) Clone() *Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return &Cart{UserID: c.UserID, Lines: lines, UpdatedAt: c.UpdatedAt}
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
