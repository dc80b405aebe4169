package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// defaultTopProducts caps the best and worst seller lists unless the
// reports configuration overrides it.
const defaultTopProducts = 10

// buildSalesReport is the order-centric view: status funnel, completed
// revenue and its daily series, and the period's best sellers. topN caps
// the best-seller list.
func buildSalesReport(p Period, windowOrders, curCompleted, prevCompleted []entity.Order, curItems []entity.OrderItem, topN int) *entity.SalesReport {
	r := &entity.SalesReport{Period: p.Current}

	r.TotalOrders = len(windowOrders)
	r.CompletedOrders = len(curCompleted)
	r.TotalRevenue = sumOrderTotals(curCompleted)
	r.RevenueGrowth = Growth(r.TotalRevenue, sumOrderTotals(prevCompleted))
	r.OrdersByStatus = ordersByStatus(windowOrders)

	revenue := newDailySeries(p.Current)
	for _, o := range curCompleted {
		revenue.Add(o.CreatedAt, o.TotalAmount)
	}
	r.RevenueByDay = revenue.Points()

	sales := productSales(curItems)
	sort.SliceStable(sales, func(i, j int) bool {
		if sales[i].Quantity != sales[j].Quantity {
			return sales[i].Quantity > sales[j].Quantity
		}
		return sales[i].Revenue.GreaterThan(sales[j].Revenue)
	})
	if len(sales) > topN {
		sales = sales[:topN]
	}
	r.BestSellers = sales

	return r
}

// buildProductReport is the catalog-centric view: stock counts with the
// inventory thresholds, best and worst performers, and category rollups.
// Products with zero in-window sales stay out of WorstProducts unless
// includeZeroSales is set. topN caps both performer lists.
func buildProductReport(p Period, products []entity.Product, curItems []entity.OrderItem, includeZeroSales bool, topN int) *entity.ProductReport {
	r := &entity.ProductReport{Period: p.Current}

	r.TotalProducts = len(products)
	for _, prod := range products {
		switch StockStatus(prod.Stock) {
		case StockStatusOut:
			r.OutOfStock++
		case StockStatusLow:
			r.ActiveProducts++
			r.LowStockItems++
		default:
			r.ActiveProducts++
		}
	}

	sales := productSales(curItems)

	best := make([]entity.ProductSales, len(sales))
	copy(best, sales)
	sort.SliceStable(best, func(i, j int) bool {
		if best[i].Quantity != best[j].Quantity {
			return best[i].Quantity > best[j].Quantity
		}
		return best[i].Revenue.GreaterThan(best[j].Revenue)
	})
	if len(best) > topN {
		best = best[:topN]
	}
	r.BestSellers = best

	worst := make([]entity.ProductSales, len(sales))
	copy(worst, sales)
	if includeZeroSales {
		sold := map[int]struct{}{}
		for _, s := range sales {
			sold[s.ProductID] = struct{}{}
		}
		for _, prod := range products {
			if _, ok := sold[prod.ID]; ok {
				continue
			}
			worst = append(worst, entity.ProductSales{
				ProductID:   prod.ID,
				ProductName: prod.Name,
				Category:    prod.CategoryName,
				Revenue:     decimal.Zero,
			})
		}
	}
	sort.SliceStable(worst, func(i, j int) bool {
		if worst[i].Quantity != worst[j].Quantity {
			return worst[i].Quantity < worst[j].Quantity
		}
		return worst[i].Revenue.LessThan(worst[j].Revenue)
	})
	if len(worst) > topN {
		worst = worst[:topN]
	}
	r.WorstProducts = worst

	r.CategoryPerformance = categoryPerformance(curItems)

	return r
}

func ordersByStatus(orders []entity.Order) []entity.StatusCount {
	counts := map[entity.OrderStatus]int{}
	for _, o := range orders {
		counts[o.Status]++
	}
	statuses := []entity.OrderStatus{
		entity.OrderPending,
		entity.OrderConfirmed,
		entity.OrderProcessing,
		entity.OrderShipped,
		entity.OrderDelivered,
		entity.OrderCancelled,
	}
	out := make([]entity.StatusCount, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, entity.StatusCount{Status: s.String(), Count: counts[s]})
	}
	return out
}

func productSales(items []entity.OrderItem) []entity.ProductSales {
	byProduct := map[int]*entity.ProductSales{}
	var order []int
	for _, it := range items {
		p, ok := byProduct[it.ProductID]
		if !ok {
			p = &entity.ProductSales{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Category:    it.CategoryName,
				Revenue:     decimal.Zero,
			}
			byProduct[it.ProductID] = p
			order = append(order, it.ProductID)
		}
		p.Quantity += it.Quantity
		p.Revenue = p.Revenue.Add(it.Subtotal())
	}
	sales := make([]entity.ProductSales, 0, len(order))
	for _, id := range order {
		sales = append(sales, *byProduct[id])
	}
	return sales
}

func categoryPerformance(items []entity.OrderItem) []entity.CategoryPerformance {
	type bucket struct {
		perf     entity.CategoryPerformance
		products map[int]struct{}
	}
	byCategory := map[string]*bucket{}
	var order []string
	for _, it := range items {
		b, ok := byCategory[it.CategoryName]
		if !ok {
			b = &bucket{
				perf:     entity.CategoryPerformance{Category: it.CategoryName, Revenue: decimal.Zero},
				products: map[int]struct{}{},
			}
			byCategory[it.CategoryName] = b
			order = append(order, it.CategoryName)
		}
		b.products[it.ProductID] = struct{}{}
		b.perf.TotalSold += it.Quantity
		b.perf.Revenue = b.perf.Revenue.Add(it.Subtotal())
	}
	categories := make([]entity.CategoryPerformance, 0, len(order))
	for _, name := range order {
		b := byCategory[name]
		b.perf.Products = len(b.products)
		categories = append(categories, b.perf)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Revenue.GreaterThan(categories[j].Revenue)
	})
	return categories
}
