package store

import (
	"context"
	"fmt"
	"time"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/dependency"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

type reportsStore struct {
	*MYSQLStore
}

// Reports returns an object implementing the Reports interface.
func (ms *MYSQLStore) Reports() dependency.Reports {
	return &reportsStore{MYSQLStore: ms}
}

func (rs *reportsStore) PageVisits(ctx context.Context, from, to time.Time) ([]entity.PageVisit, error) {
	query := `
	SELECT pv.id, pv.visitor_id, pv.url, pv.page_title, pv.referrer,
		pv.visited_at, pv.duration, pv.bounced,
		v.device, v.session_id
	FROM page_visit pv
	JOIN visitor v ON pv.visitor_id = v.id
	WHERE pv.visited_at >= :from AND pv.visited_at < :to
	ORDER BY pv.visited_at`
	visits, err := QueryListNamed[entity.PageVisit](ctx, rs.DB(), query, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get page visits: %w", err)
	}
	return visits, nil
}

const orderColumns = `co.id, co.uuid, co.order_number, co.user_id,
		co.total_amount, co.status, co.payment_status, co.bank_name,
		co.created_at, u.name AS customer_name`

func (rs *reportsStore) CompletedOrders(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM customer_order co
	JOIN user u ON co.user_id = u.id
	WHERE co.status = 'DELIVERED' AND co.payment_status = 'VERIFIED'
	AND co.created_at >= :from AND co.created_at < :to
	ORDER BY co.created_at`, orderColumns)
	orders, err := QueryListNamed[entity.Order](ctx, rs.DB(), query, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get completed orders: %w", err)
	}
	return orders, nil
}

func (rs *reportsStore) OrdersInWindow(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM customer_order co
	JOIN user u ON co.user_id = u.id
	WHERE co.created_at >= :from AND co.created_at < :to
	ORDER BY co.created_at`, orderColumns)
	orders, err := QueryListNamed[entity.Order](ctx, rs.DB(), query, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get window orders: %w", err)
	}
	return orders, nil
}

// PendingPaymentOrders is the as-of-now snapshot, deliberately unwindowed.
func (rs *reportsStore) PendingPaymentOrders(ctx context.Context) ([]entity.Order, error) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM customer_order co
	JOIN user u ON co.user_id = u.id
	WHERE co.payment_status IN ('PENDING', 'PAID')
	AND co.status <> 'CANCELLED'
	ORDER BY co.created_at DESC`, orderColumns)
	orders, err := QueryListNamed[entity.Order](ctx, rs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get pending payment orders: %w", err)
	}
	return orders, nil
}

func (rs *reportsStore) CompletedOrderItems(ctx context.Context, from, to time.Time) ([]entity.OrderItem, error) {
	query := `
	SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		co.created_at AS ordered_at,
		p.name AS product_name, p.price AS product_price,
		p.category_id, c.name AS category_name
	FROM order_item oi
	JOIN customer_order co ON oi.order_id = co.id
	JOIN product p ON oi.product_id = p.id
	JOIN category c ON p.category_id = c.id
	WHERE co.status = 'DELIVERED' AND co.payment_status = 'VERIFIED'
	AND co.created_at >= :from AND co.created_at < :to
	ORDER BY co.created_at`
	items, err := QueryListNamed[entity.OrderItem](ctx, rs.DB(), query, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get completed order items: %w", err)
	}
	return items, nil
}

func (rs *reportsStore) Products(ctx context.Context) ([]entity.Product, error) {
	query := `
	SELECT p.id, p.name, p.price, p.stock, p.category_id, c.name AS category_name
	FROM product p
	JOIN category c ON p.category_id = c.id
	ORDER BY p.id`
	products, err := QueryListNamed[entity.Product](ctx, rs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	return products, nil
}

// Customers fetches all CUSTOMER users and stitches their all-time orders
// onto them in chronological order.
func (rs *reportsStore) Customers(ctx context.Context) ([]entity.Customer, error) {
	customers, err := QueryListNamed[entity.Customer](ctx, rs.DB(), `
	SELECT u.id, u.name, u.email, u.created_at
	FROM user u
	WHERE u.role = 'CUSTOMER'
	ORDER BY u.id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get customers: %w", err)
	}

	orders, err := QueryListNamed[entity.CustomerOrder](ctx, rs.DB(), `
	SELECT co.id AS order_id, co.user_id, co.total_amount, co.status, co.created_at
	FROM customer_order co
	JOIN user u ON co.user_id = u.id
	WHERE u.role = 'CUSTOMER'
	ORDER BY co.created_at`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get customer orders: %w", err)
	}

	byUser := map[int][]entity.CustomerOrder{}
	for _, o := range orders {
		byUser[o.UserID] = append(byUser[o.UserID], o)
	}
	for i := range customers {
		customers[i].Orders = byUser[customers[i].ID]
	}
	return customers, nil
}
