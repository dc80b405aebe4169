package dependency

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

type (
	// Reports supplies the raw rows the aggregator folds into reports.
	// Windowed methods return rows with timestamps in [from, to), already
	// joined to the minimal related entity.
	Reports interface {
		// PageVisits returns visits in the window joined with the visitor's
		// device and session.
		PageVisits(ctx context.Context, from, to time.Time) ([]entity.PageVisit, error)
		// CompletedOrders returns orders with status DELIVERED and payment
		// status VERIFIED placed in the window.
		CompletedOrders(ctx context.Context, from, to time.Time) ([]entity.Order, error)
		// CompletedOrderItems returns items of completed orders placed in
		// the window, joined with order date and current product data.
		CompletedOrderItems(ctx context.Context, from, to time.Time) ([]entity.OrderItem, error)
		// OrdersInWindow returns all orders placed in the window regardless
		// of status.
		OrdersInWindow(ctx context.Context, from, to time.Time) ([]entity.Order, error)
		// PendingPaymentOrders returns the as-of-now snapshot of
		// non-cancelled orders awaiting payment verification. Not windowed.
		PendingPaymentOrders(ctx context.Context) ([]entity.Order, error)
		// Products returns the full current catalog with category names.
		Products(ctx context.Context) ([]entity.Product, error)
		// Customers returns users with role CUSTOMER with their all-time
		// orders attached in chronological order.
		Customers(ctx context.Context) ([]entity.Customer, error)
	}

	// Repository is the root store handle.
	Repository interface {
		Reports() Reports
		Close()
	}

	// DB is the read surface the store's query helper needs from sqlx.
	DB interface {
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	}
)
