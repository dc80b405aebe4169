package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

func (os OrderStatus) String() string {
	return string(os)
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentVerified PaymentStatus = "VERIFIED"
	PaymentRejected PaymentStatus = "REJECTED"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

// Order represents the customer_order table joined with the buyer's name.
// Payment is manual bank transfer: bank_name holds the destination bank of
// the uploaded transfer proof and stays NULL until the buyer picks one.
type Order struct {
	ID            int             `db:"id"`
	UUID          string          `db:"uuid"`
	OrderNumber   string          `db:"order_number"`
	UserID        int             `db:"user_id"`
	CustomerName  string          `db:"customer_name"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        OrderStatus     `db:"status"`
	PaymentStatus PaymentStatus   `db:"payment_status"`
	BankName      sql.NullString  `db:"bank_name"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (o *Order) TotalAmountDecimal() decimal.Decimal {
	return o.TotalAmount.Round(2)
}

// OrderItem represents the order_item table joined with its order date and
// product. Price is the unit price snapshotted at order time and is never
// mutated after creation; ProductPrice is the current catalog price.
type OrderItem struct {
	ID        int             `db:"id"`
	OrderID   int             `db:"order_id"`
	ProductID int             `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`

	// joined from customer_order
	OrderedAt time.Time `db:"ordered_at"`

	// joined from product
	ProductName  string          `db:"product_name"`
	ProductPrice decimal.Decimal `db:"product_price"`
	CategoryID   int             `db:"category_id"`
	CategoryName string          `db:"category_name"`
}

// Subtotal is the revenue the item contributed: snapshot price * quantity.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
