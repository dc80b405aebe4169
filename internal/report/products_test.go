package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

var salesNow = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

func TestSalesReportStatusFunnel(t *testing.T) {
	p := ResolvePeriod(7, salesNow)
	createdAt := salesNow.Add(-24 * time.Hour)
	windowOrders := []entity.Order{
		completedOrder(1, 100000, "BCA", createdAt),
		completedOrder(2, 50000, "BCA", createdAt),
	}
	windowOrders[1].Status = entity.OrderPending

	r := buildSalesReport(p, windowOrders, windowOrders[:1], nil, nil, defaultTopProducts)
	assert.Equal(t, 2, r.TotalOrders)
	assert.Equal(t, 1, r.CompletedOrders)
	assert.Equal(t, "100000", r.TotalRevenue.String())
	assert.Equal(t, 100.0, r.RevenueGrowth)

	// every status present in fixed order, zero counts included
	require.Len(t, r.OrdersByStatus, 6)
	assert.Equal(t, entity.StatusCount{Status: "PENDING", Count: 1}, r.OrdersByStatus[0])
	assert.Equal(t, entity.StatusCount{Status: "CONFIRMED", Count: 0}, r.OrdersByStatus[1])
	assert.Equal(t, entity.StatusCount{Status: "DELIVERED", Count: 1}, r.OrdersByStatus[4])
}

func TestSalesReportBestSellers(t *testing.T) {
	p := ResolvePeriod(7, salesNow)
	orderedAt := salesNow.Add(-24 * time.Hour)
	items := []entity.OrderItem{
		item(1, 7, 2, 10000, 10000, orderedAt),
		item(1, 8, 2, 50000, 50000, orderedAt),
		item(2, 9, 5, 5000, 5000, orderedAt),
	}

	r := buildSalesReport(p, nil, nil, nil, items, defaultTopProducts)
	require.Len(t, r.BestSellers, 3)
	assert.Equal(t, 9, r.BestSellers[0].ProductID) // most units
	// tie on quantity broken by revenue
	assert.Equal(t, 8, r.BestSellers[1].ProductID)
	assert.Equal(t, 7, r.BestSellers[2].ProductID)
}

func TestSalesReportRevenueByDay(t *testing.T) {
	p := ResolvePeriod(7, salesNow)
	createdAt := salesNow.Add(-24 * time.Hour)
	completed := []entity.Order{completedOrder(1, 100000, "BCA", createdAt)}

	r := buildSalesReport(p, completed, completed, nil, nil, defaultTopProducts)
	require.Len(t, r.RevenueByDay, 8)
	total := 0
	for _, pt := range r.RevenueByDay {
		if !pt.Value.IsZero() {
			total++
			assert.Equal(t, "100000", pt.Value.String())
		}
	}
	assert.Equal(t, 1, total)
}

func TestProductReportStockCounts(t *testing.T) {
	p := ResolvePeriod(7, salesNow)
	products := []entity.Product{
		product(1, "Keripik Pisang", 15000, 0, "Keripik"),
		product(2, "Keripik Singkong", 12000, 5, "Keripik"),
		product(3, "Dodol Garut", 25000, 100, "Manisan"),
	}

	r := buildProductReport(p, products, nil, false, defaultTopProducts)
	assert.Equal(t, 3, r.TotalProducts)
	assert.Equal(t, 2, r.ActiveProducts)
	assert.Equal(t, 1, r.OutOfStock)
	assert.Equal(t, 1, r.LowStockItems)
}

func TestProductReportWorstExcludesZeroSales(t *testing.T) {
	p := ResolvePeriod(7, salesNow)
	orderedAt := salesNow.Add(-24 * time.Hour)
	products := []entity.Product{
		product(7, "Keripik Pisang", 10000, 20, "Keripik"),
		product(8, "Dodol Garut", 25000, 20, "Manisan"),
	}
	items := []entity.OrderItem{
		item(1, 7, 2, 10000, 10000, orderedAt),
	}

	r := buildProductReport(p, products, items, false, defaultTopProducts)
	require.Len(t, r.WorstProducts, 1)
	assert.Equal(t, 7, r.WorstProducts[0].ProductID)

	// the unsold product only appears when explicitly requested
	r = buildProductReport(p, products, items, true, defaultTopProducts)
	require.Len(t, r.WorstProducts, 2)
	assert.Equal(t, 8, r.WorstProducts[0].ProductID)
	assert.Equal(t, 0, r.WorstProducts[0].Quantity)
	assert.True(t, r.WorstProducts[0].Revenue.IsZero())
}

func TestProductReportCategoryPerformance(t *testing.T) {
	p := ResolvePeriod(7, salesNow)
	orderedAt := salesNow.Add(-24 * time.Hour)
	keripik1 := item(1, 7, 2, 10000, 10000, orderedAt)
	keripik2 := item(1, 8, 1, 12000, 12000, orderedAt)
	keripik2.ProductName = "Keripik Singkong"
	manisan := item(2, 9, 1, 25000, 25000, orderedAt)
	manisan.CategoryName = "Manisan"
	manisan.ProductName = "Dodol Garut"

	r := buildProductReport(p, nil, []entity.OrderItem{keripik1, keripik2, manisan}, false, defaultTopProducts)
	require.Len(t, r.CategoryPerformance, 2)
	// sorted by revenue descending: Keripik 32000 vs Manisan 25000
	assert.Equal(t, "Keripik", r.CategoryPerformance[0].Category)
	assert.Equal(t, 2, r.CategoryPerformance[0].Products)
	assert.Equal(t, 3, r.CategoryPerformance[0].TotalSold)
	assert.Equal(t, "32000", r.CategoryPerformance[0].Revenue.String())
	assert.Equal(t, "Manisan", r.CategoryPerformance[1].Category)
}
