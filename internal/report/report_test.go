package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// stubRepo serves canned rows and records fetch windows. Any method whose
// name is in failOn returns errFetch instead.
type stubRepo struct {
	visits    []entity.PageVisit
	orders    []entity.Order
	items     []entity.OrderItem
	pending   []entity.Order
	products  []entity.Product
	customers []entity.Customer

	failOn       map[string]bool
	pendingCalls int
}

var errFetch = errors.New("connection reset")

func (s *stubRepo) fail(method string) bool {
	return s.failOn != nil && s.failOn[method]
}

func (s *stubRepo) PageVisits(ctx context.Context, from, to time.Time) ([]entity.PageVisit, error) {
	if s.fail("PageVisits") {
		return nil, errFetch
	}
	var out []entity.PageVisit
	for _, v := range s.visits {
		if !v.VisitedAt.Before(from) && v.VisitedAt.Before(to) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) CompletedOrders(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	if s.fail("CompletedOrders") {
		return nil, errFetch
	}
	var out []entity.Order
	for _, o := range s.orders {
		if o.Status != entity.OrderDelivered || o.PaymentStatus != entity.PaymentVerified {
			continue
		}
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubRepo) CompletedOrderItems(ctx context.Context, from, to time.Time) ([]entity.OrderItem, error) {
	if s.fail("CompletedOrderItems") {
		return nil, errFetch
	}
	var out []entity.OrderItem
	for _, it := range s.items {
		if !it.OrderedAt.Before(from) && it.OrderedAt.Before(to) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubRepo) OrdersInWindow(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	if s.fail("OrdersInWindow") {
		return nil, errFetch
	}
	var out []entity.Order
	for _, o := range s.orders {
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubRepo) PendingPaymentOrders(ctx context.Context) ([]entity.Order, error) {
	if s.fail("PendingPaymentOrders") {
		return nil, errFetch
	}
	s.pendingCalls++
	return s.pending, nil
}

func (s *stubRepo) Products(ctx context.Context) ([]entity.Product, error) {
	if s.fail("Products") {
		return nil, errFetch
	}
	return s.products, nil
}

func (s *stubRepo) Customers(ctx context.Context) ([]entity.Customer, error) {
	if s.fail("Customers") {
		return nil, errFetch
	}
	return s.customers, nil
}

var aggNow = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return aggNow }

func seededRepo() *stubRepo {
	createdAt := aggNow.Add(-24 * time.Hour)
	oldOrder := completedOrder(2, 75000, "Mandiri", aggNow.AddDate(0, 0, -10))
	pendingOrder := completedOrder(3, 30000, "", aggNow.AddDate(0, 0, -40))
	pendingOrder.Status = entity.OrderPending
	pendingOrder.PaymentStatus = entity.PaymentPending
	return &stubRepo{
		visits: []entity.PageVisit{
			visit(1, entity.DeviceDesktop, "/", "https://google.com/search", false, 30),
			visit(2, entity.DeviceMobile, "/produk", "", true, 10),
		},
		orders:  []entity.Order{completedOrder(1, 100000, "BCA", createdAt), oldOrder},
		items:   []entity.OrderItem{item(1, 7, 1, 100000, 100000, createdAt)},
		pending: []entity.Order{pendingOrder},
		products: []entity.Product{
			product(7, "Keripik Pisang", 10000, 25, "Keripik"),
		},
		customers: []entity.Customer{
			customer(1, "andi", aggNow.AddDate(0, 0, -2),
				customerOrder(100000, entity.OrderDelivered, aggNow.Add(-24*time.Hour))),
		},
	}
}

func TestAggregatorIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	agg := New(nil, repo, fixedNow)

	first, err := agg.Financial(ctx, 7)
	require.NoError(t, err)
	second, err := agg.Financial(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	tr1, err := agg.Traffic(ctx, 7)
	require.NoError(t, err)
	tr2, err := agg.Traffic(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, tr1, tr2)
}

func TestAggregatorFailsAtomically(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	repo.failOn = map[string]bool{"CompletedOrderItems": true}
	agg := New(nil, repo, fixedNow)

	r, err := agg.Financial(ctx, 7)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, errFetch)

	// other reports not touching the failing fetch still work
	tr, err := agg.Traffic(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, tr)
}

func TestAggregatorDefaultPeriod(t *testing.T) {
	ctx := context.Background()
	agg := New(&Config{DefaultPeriodDays: 7}, seededRepo(), fixedNow)

	r, err := agg.Traffic(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, r.Period.To.Sub(r.Period.From))

	// explicit period wins over the default
	r, err = agg.Traffic(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, r.Period.To.Sub(r.Period.From))
}

func TestAggregatorConfiguredLimits(t *testing.T) {
	ctx := context.Background()
	createdAt := aggNow.Add(-24 * time.Hour)
	repo := seededRepo()
	keripik := item(1, 7, 3, 10000, 10000, createdAt)
	keripik.ProductName = "Keripik Pisang"
	dodol := item(1, 8, 1, 20000, 20000, createdAt)
	dodol.ProductName = "Dodol Garut"
	repo.items = []entity.OrderItem{keripik, dodol}
	repo.customers = []entity.Customer{
		customer(1, "andi", aggNow.AddDate(0, 0, -2),
			customerOrder(100000, entity.OrderDelivered, createdAt)),
		customer(2, "budi", aggNow.AddDate(0, 0, -3),
			customerOrder(50000, entity.OrderDelivered, createdAt)),
	}
	agg := New(&Config{TopProducts: 1, TopCustomers: 1}, repo, fixedNow)

	sr, err := agg.Sales(ctx, 7)
	require.NoError(t, err)
	require.Len(t, sr.BestSellers, 1)
	assert.Equal(t, "Keripik Pisang", sr.BestSellers[0].ProductName)

	cr, err := agg.Customers(ctx, 7)
	require.NoError(t, err)
	require.Len(t, cr.TopCustomers, 1)
	assert.Equal(t, "andi", cr.TopCustomers[0].Name)

	// unset limits fall back to the defaults
	agg = New(&Config{}, repo, fixedNow)
	sr, err = agg.Sales(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, sr.BestSellers, 2)
}

func TestAggregatorPendingSnapshotUnwindowed(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	agg := New(nil, repo, fixedNow)

	r, err := agg.Financial(ctx, 7)
	require.NoError(t, err)
	require.Len(t, r.PendingPayments, 1)
	// the pending order is 40 days old, far outside the 7-day window
	assert.Equal(t, 3, r.PendingPayments[0].OrderID)
	assert.Equal(t, 1, repo.pendingCalls)
}

func TestAggregatorWindowFiltering(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	agg := New(nil, repo, fixedNow)

	// order 2 is 10 days old: inside a 30-day window, outside a 7-day one
	r, err := agg.Sales(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, r.CompletedOrders)

	r, err = agg.Sales(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, r.CompletedOrders)
}
