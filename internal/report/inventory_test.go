package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

var inventoryNow = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

func product(id int, name string, price int64, stock int, category string) entity.Product {
	return entity.Product{
		ID:           id,
		Name:         name,
		Price:        decimal.NewFromInt(price),
		Stock:        stock,
		CategoryName: category,
	}
}

func TestInventoryCounts(t *testing.T) {
	p := ResolvePeriod(7, inventoryNow)
	products := []entity.Product{
		product(1, "Keripik Pisang", 15000, 0, "Keripik"),
		product(2, "Keripik Singkong", 12000, 5, "Keripik"),
		product(3, "Dodol Garut", 25000, 100, "Manisan"),
	}

	r := buildInventoryReport(p, products, nil, nil)
	assert.Equal(t, 105, r.TotalStock)
	assert.Equal(t, 1, r.OutOfStockCount)
	assert.Equal(t, 1, r.LowStockCount)
	// 0*15000 + 5*12000 + 100*25000
	assert.Equal(t, "2560000", r.TotalInventoryValue.String())
}

func TestInventoryCategoryStock(t *testing.T) {
	p := ResolvePeriod(7, inventoryNow)
	products := []entity.Product{
		product(1, "Keripik Pisang", 15000, 10, "Keripik"),
		product(2, "Keripik Singkong", 12000, 20, "Keripik"),
		product(3, "Dodol Garut", 25000, 100, "Manisan"),
	}

	r := buildInventoryReport(p, products, nil, nil)
	require.Len(t, r.CategoryStock, 2)
	// sorted by total stock descending
	assert.Equal(t, "Manisan", r.CategoryStock[0].Category)
	assert.Equal(t, 100, r.CategoryStock[0].TotalStock)
	assert.Equal(t, 1, r.CategoryStock[0].ProductCount)
	assert.Equal(t, "Keripik", r.CategoryStock[1].Category)
	assert.Equal(t, 30, r.CategoryStock[1].TotalStock)
	assert.Equal(t, "390000", r.CategoryStock[1].TotalValue.String())
}

func TestInventoryStockAlerts(t *testing.T) {
	p := ResolvePeriod(7, inventoryNow)
	products := []entity.Product{
		product(1, "Keripik Pisang", 15000, 0, "Keripik"),
		product(2, "Keripik Singkong", 12000, 3, "Keripik"),
		product(3, "Dodol Garut", 25000, 100, "Manisan"),
	}

	r := buildInventoryReport(p, products, nil, nil)
	require.Len(t, r.StockAlerts, 2)

	assert.Equal(t, "out_of_stock", r.StockAlerts[0].Type)
	assert.Equal(t, "high", r.StockAlerts[0].Severity)
	assert.Equal(t, "Keripik Pisang habis stok", r.StockAlerts[0].Message)

	assert.Equal(t, "low_stock", r.StockAlerts[1].Type)
	assert.Equal(t, "medium", r.StockAlerts[1].Severity)
	assert.Equal(t, "Stok Keripik Singkong tersisa 3", r.StockAlerts[1].Message)
}

func TestInventoryStockMovementTrend(t *testing.T) {
	p := ResolvePeriod(7, inventoryNow)
	orderedAt := inventoryNow.Add(-24 * time.Hour)
	curItems := []entity.OrderItem{
		item(1, 7, 3, 10000, 10000, orderedAt),
	}
	prevItems := []entity.OrderItem{
		item(2, 7, 2, 10000, 10000, orderedAt.AddDate(0, 0, -7)),
	}

	r := buildInventoryReport(p, nil, curItems, prevItems)
	assert.Equal(t, 50.0, r.StockMovementTrend)

	// zero baseline policy applies here too
	r = buildInventoryReport(p, nil, curItems, nil)
	assert.Equal(t, 100.0, r.StockMovementTrend)
}
