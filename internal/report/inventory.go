package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// buildInventoryReport folds the current catalog plus completed order
// items of both windows (for the movement trend) into the inventory
// report.
func buildInventoryReport(p Period, products []entity.Product, curItems, prevItems []entity.OrderItem) *entity.InventoryReport {
	r := &entity.InventoryReport{Period: p.Current}

	for _, prod := range products {
		r.TotalStock += prod.Stock
		r.TotalInventoryValue = r.TotalInventoryValue.Add(prod.StockValue())
		switch StockStatus(prod.Stock) {
		case StockStatusOut:
			r.OutOfStockCount++
		case StockStatusLow:
			r.LowStockCount++
		}
	}

	r.StockMovementTrend = GrowthInt(unitsSold(curItems), unitsSold(prevItems))
	r.CategoryStock = categoryStock(products)
	r.StockAlerts = stockAlerts(products)

	return r
}

func unitsSold(items []entity.OrderItem) int {
	units := 0
	for _, it := range items {
		units += it.Quantity
	}
	return units
}

func categoryStock(products []entity.Product) []entity.CategoryStock {
	byCategory := map[string]*entity.CategoryStock{}
	var order []string
	for _, p := range products {
		c, ok := byCategory[p.CategoryName]
		if !ok {
			c = &entity.CategoryStock{Category: p.CategoryName, TotalValue: decimal.Zero}
			byCategory[p.CategoryName] = c
			order = append(order, p.CategoryName)
		}
		c.TotalStock += p.Stock
		c.TotalValue = c.TotalValue.Add(p.StockValue())
		c.ProductCount++
	}
	categories := make([]entity.CategoryStock, 0, len(order))
	for _, name := range order {
		categories = append(categories, *byCategory[name])
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].TotalStock > categories[j].TotalStock
	})
	return categories
}

func stockAlerts(products []entity.Product) []entity.StockAlert {
	var alerts []entity.StockAlert
	for _, p := range products {
		switch StockStatus(p.Stock) {
		case StockStatusOut:
			alerts = append(alerts, entity.StockAlert{
				ProductID:   p.ID,
				ProductName: p.Name,
				Type:        "out_of_stock",
				Severity:    "high",
				Message:     fmt.Sprintf("%s habis stok", p.Name),
			})
		case StockStatusLow:
			alerts = append(alerts, entity.StockAlert{
				ProductID:   p.ID,
				ProductName: p.Name,
				Type:        "low_stock",
				Severity:    "medium",
				Message:     fmt.Sprintf("Stok %s tersisa %d", p.Name, p.Stock),
			})
		}
	}
	return alerts
}
