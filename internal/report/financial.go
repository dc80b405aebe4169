package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// costRatio models unit COGS as 60% of the *current* catalog price, not
// the order-item snapshot price. This is a known approximation carried
// over from the bookkeeping rules the shop runs on: it drifts whenever a
// product is repriced after the sale. Keep it; do not "fix" it to use
// item.Price.
var costRatio = decimal.NewFromFloat(0.6)

var (
	operationalRatio = decimal.NewFromFloat(0.10) // of COGS
	marketingRatio   = decimal.NewFromFloat(0.05) // of revenue
	shippingPerOrder = decimal.NewFromInt(15000)  // flat per completed order
)

// Expense labels as shown on the admin dashboard.
const (
	expenseOperational = "Operasional"
	expenseMarketing   = "Marketing"
	expenseShipping    = "Pengiriman"
)

// fallback bank label for orders without a recorded destination bank
const defaultPaymentMethod = "Transfer Bank"

// buildFinancialReport folds completed orders and their items (current and
// previous window) plus the unwindowed pending-payment snapshot into the
// financial report.
func buildFinancialReport(p Period, curOrders, prevOrders []entity.Order, curItems, prevItems []entity.OrderItem, pending []entity.Order) *entity.FinancialReport {
	r := &entity.FinancialReport{Period: p.Current}

	r.TotalRevenue = sumOrderTotals(curOrders)
	r.TotalCOGS = sumCOGS(curItems)
	r.GrossProfit = r.TotalRevenue.Sub(r.TotalCOGS)
	r.CompletedOrders = len(curOrders)

	operational := r.TotalCOGS.Mul(operationalRatio)
	marketing := r.TotalRevenue.Mul(marketingRatio)
	shipping := shippingPerOrder.Mul(decimal.NewFromInt(int64(len(curOrders))))
	r.Expenses = []entity.ExpenseItem{
		{Name: expenseOperational, Amount: operational},
		{Name: expenseMarketing, Amount: marketing},
		{Name: expenseShipping, Amount: shipping},
	}
	r.TotalExpenses = operational.Add(marketing).Add(shipping).Add(r.TotalCOGS)
	r.NetProfit = r.TotalRevenue.Sub(r.TotalExpenses)

	r.ProfitMargin = pctOfDecimal(r.GrossProfit, r.TotalRevenue)
	r.NetProfitMargin = pctOfDecimal(r.NetProfit, r.TotalRevenue)
	r.AverageOrderValue = averageOrderValue(r.TotalRevenue, len(curOrders))

	prevRevenue := sumOrderTotals(prevOrders)
	r.RevenueGrowth = Growth(r.TotalRevenue, prevRevenue)
	r.AverageOrderGrowth = Growth(r.AverageOrderValue, averageOrderValue(prevRevenue, len(prevOrders)))

	r.DailyFinance = dailyFinance(p.Current, curOrders, curItems)
	r.PaymentMethods = paymentMethods(curOrders, pending)
	r.TopRevenueProducts = topRevenueProducts(curItems, topRevenueProductsLimit)
	r.PendingPayments = pendingPayments(pending)

	return r
}

const topRevenueProductsLimit = 20

func sumOrderTotals(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return total
}

func sumCOGS(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(itemCOGS(it))
	}
	return total
}

func itemCOGS(it entity.OrderItem) decimal.Decimal {
	return it.ProductPrice.Mul(costRatio).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

func averageOrderValue(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(orders))).Round(2)
}

func dailyFinance(tr entity.TimeRange, orders []entity.Order, items []entity.OrderItem) []entity.DailyFinancePoint {
	revenue := newDailySeries(tr)
	for _, o := range orders {
		revenue.Add(o.CreatedAt, o.TotalAmount)
	}
	cogs := newDailySeries(tr)
	for _, it := range items {
		cogs.Add(it.OrderedAt, itemCOGS(it))
	}

	revPoints := revenue.Points()
	cogsPoints := cogs.Points()
	daily := make([]entity.DailyFinancePoint, 0, len(revPoints))
	for i, rp := range revPoints {
		profit := rp.Value.Sub(cogsPoints[i].Value)
		daily = append(daily, entity.DailyFinancePoint{
			Date:         rp.Date,
			Revenue:      rp.Value,
			COGS:         cogsPoints[i].Value,
			Profit:       profit,
			ProfitMargin: pctOfDecimal(profit, rp.Value),
		})
	}
	return daily
}

// paymentMethods groups completed plus pending orders by destination bank.
func paymentMethods(completed, pending []entity.Order) []entity.PaymentMethodMetric {
	type bucket struct {
		count  int
		amount decimal.Decimal
	}
	buckets := map[string]*bucket{}
	var order []string
	total := 0
	add := func(orders []entity.Order) {
		for _, o := range orders {
			method := defaultPaymentMethod
			if o.BankName.Valid && o.BankName.String != "" {
				method = o.BankName.String
			}
			b, ok := buckets[method]
			if !ok {
				b = &bucket{amount: decimal.Zero}
				buckets[method] = b
				order = append(order, method)
			}
			b.count++
			b.amount = b.amount.Add(o.TotalAmount)
			total++
		}
	}
	add(completed)
	add(pending)

	methods := make([]entity.PaymentMethodMetric, 0, len(order))
	for _, m := range order {
		b := buckets[m]
		methods = append(methods, entity.PaymentMethodMetric{
			Method:     m,
			Count:      b.count,
			Amount:     b.amount,
			Percentage: pctOf(b.count, total),
		})
	}
	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].Count > methods[j].Count
	})
	return methods
}

// topRevenueProducts ranks products by in-window revenue. Revenue uses the
// order-item snapshot price; only COGS uses the catalog price.
func topRevenueProducts(items []entity.OrderItem, limit int) []entity.ProductRevenue {
	byProduct := map[int]*entity.ProductRevenue{}
	var order []int
	for _, it := range items {
		p, ok := byProduct[it.ProductID]
		if !ok {
			p = &entity.ProductRevenue{ProductID: it.ProductID, ProductName: it.ProductName, Revenue: decimal.Zero}
			byProduct[it.ProductID] = p
			order = append(order, it.ProductID)
		}
		p.Revenue = p.Revenue.Add(it.Subtotal())
		p.Quantity += it.Quantity
	}
	products := make([]entity.ProductRevenue, 0, len(order))
	for _, id := range order {
		products = append(products, *byProduct[id])
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue.GreaterThan(products[j].Revenue)
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

func pendingPayments(pending []entity.Order) []entity.PendingPayment {
	rows := make([]entity.PendingPayment, 0, len(pending))
	for _, o := range pending {
		rows = append(rows, entity.PendingPayment{
			OrderID:       o.ID,
			OrderUUID:     o.UUID,
			OrderNumber:   o.OrderNumber,
			CustomerName:  o.CustomerName,
			Amount:        o.TotalAmount,
			PaymentStatus: o.PaymentStatus,
			CreatedAt:     o.CreatedAt,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows
}
