package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a user with role CUSTOMER, with all-time orders
// attached. Orders are insertion ordered (chronological).
type Customer struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`

	Orders []CustomerOrder
}

// CustomerOrder is the slim order row stitched onto a customer.
type CustomerOrder struct {
	OrderID     int             `db:"order_id"`
	UserID      int             `db:"user_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      OrderStatus     `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TotalSpent sums the customer's non-cancelled order totals.
func (c *Customer) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, o := range c.Orders {
		if o.Status == OrderCancelled {
			continue
		}
		total = total.Add(o.TotalAmount)
	}
	return total
}
