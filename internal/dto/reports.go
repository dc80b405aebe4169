package dto

import (
	"time"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

const dateLayout = "2006-01-02"

// Period describes the resolved reporting window of a response.
type Period struct {
	Days int    `json:"days"`
	From string `json:"from"`
	To   string `json:"to"`
}

// CountPoint is one dense daily bucket carrying an integer count.
type CountPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// MoneyPoint is one dense daily bucket carrying a monetary value.
type MoneyPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type TrafficReport struct {
	Period             Period               `json:"period"`
	TotalPageviews     int                  `json:"totalPageviews"`
	TotalVisitors      int                  `json:"totalVisitors"`
	BounceRate         float64              `json:"bounceRate"`
	AvgSessionDuration float64              `json:"avgSessionDuration"`
	ConversionRate     float64              `json:"conversionRate"`
	PageviewsGrowth    float64              `json:"pageviewsGrowth"`
	VisitorsGrowth     float64              `json:"visitorsGrowth"`
	SessionGrowth      float64              `json:"sessionGrowth"`
	BounceRateGrowth   float64              `json:"bounceRateGrowth"`
	DailyData          TrafficDaily         `json:"dailyData"`
	PopularPages       []PagePerformance    `json:"popularPages"`
	TrafficSources     []TrafficSourceShare `json:"trafficSources"`
	DeviceData         []DeviceShare        `json:"deviceData"`
}

type TrafficDaily struct {
	Pageviews []CountPoint `json:"pageviews"`
	Visitors  []CountPoint `json:"visitors"`
}

type PagePerformance struct {
	Page    string  `json:"page"`
	Title   string  `json:"title"`
	Visits  int     `json:"visits"`
	AvgTime float64 `json:"avgTime"`
}

type TrafficSourceShare struct {
	Source     string  `json:"source"`
	Visits     int     `json:"visits"`
	Percentage float64 `json:"percentage"`
}

type DeviceShare struct {
	Device     string  `json:"device"`
	Visitors   int     `json:"visitors"`
	Percentage float64 `json:"percentage"`
}

type FinancialReport struct {
	Period             Period                `json:"period"`
	TotalRevenue       float64               `json:"totalRevenue"`
	TotalCOGS          float64               `json:"totalCOGS"`
	GrossProfit        float64               `json:"grossProfit"`
	TotalExpenses      float64               `json:"totalExpenses"`
	NetProfit          float64               `json:"netProfit"`
	ProfitMargin       float64               `json:"profitMargin"`
	NetProfitMargin    float64               `json:"netProfitMargin"`
	CompletedOrders    int                   `json:"completedOrders"`
	AverageOrderValue  float64               `json:"averageOrderValue"`
	RevenueGrowth      float64               `json:"revenueGrowth"`
	AverageOrderGrowth float64               `json:"averageOrderGrowth"`
	ExpenseData        []ExpenseItem         `json:"expenseData"`
	DailyData          []DailyFinancePoint   `json:"dailyData"`
	PaymentMethodData  []PaymentMethodMetric `json:"paymentMethodData"`
	TopRevenueProducts []ProductRevenue      `json:"topRevenueProducts"`
	PendingPayments    []PendingPayment      `json:"pendingPayments"`
}

type ExpenseItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type DailyFinancePoint struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	COGS         float64 `json:"cogs"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

type PaymentMethodMetric struct {
	Method     string  `json:"method"`
	Count      int     `json:"count"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type ProductRevenue struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Revenue     float64 `json:"revenue"`
	Quantity    int     `json:"quantity"`
}

type PendingPayment struct {
	OrderID       int     `json:"orderId"`
	OrderUUID     string  `json:"orderUuid"`
	OrderNumber   string  `json:"orderNumber"`
	CustomerName  string  `json:"customerName"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

type InventoryReport struct {
	Period              Period          `json:"period"`
	TotalStock          int             `json:"totalStock"`
	LowStockCount       int             `json:"lowStockCount"`
	OutOfStockCount     int             `json:"outOfStockCount"`
	TotalInventoryValue float64         `json:"totalInventoryValue"`
	StockMovementTrend  float64         `json:"stockMovementTrend"`
	CategoryStockData   []CategoryStock `json:"categoryStockData"`
	StockAlerts         []StockAlert    `json:"stockAlerts"`
}

type CategoryStock struct {
	Category     string  `json:"category"`
	TotalStock   int     `json:"totalStock"`
	TotalValue   float64 `json:"totalValue"`
	ProductCount int     `json:"productCount"`
}

type StockAlert struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
}

type CustomerReport struct {
	Period                Period          `json:"period"`
	TotalCustomers        int             `json:"totalCustomers"`
	NewCustomers          int             `json:"newCustomers"`
	ActiveCustomers       int             `json:"activeCustomers"`
	RetentionRate         float64         `json:"retentionRate"`
	CustomerLifetimeValue float64         `json:"customerLifetimeValue"`
	SegmentData           []SegmentCount  `json:"segmentData"`
	AcquisitionData       []CountPoint    `json:"acquisitionData"`
	TopCustomers          []CustomerSpend `json:"topCustomers"`
}

type SegmentCount struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
}

type CustomerSpend struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

type SalesReport struct {
	Period          Period         `json:"period"`
	TotalOrders     int            `json:"totalOrders"`
	CompletedOrders int            `json:"completedOrders"`
	TotalRevenue    float64        `json:"totalRevenue"`
	RevenueGrowth   float64        `json:"revenueGrowth"`
	OrdersByStatus  []StatusCount  `json:"ordersByStatus"`
	RevenueByDay    []MoneyPoint   `json:"revenueByDay"`
	BestSellers     []ProductSales `json:"bestSellers"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ProductReport struct {
	Period              Period                `json:"period"`
	TotalProducts       int                   `json:"totalProducts"`
	ActiveProducts      int                   `json:"activeProducts"`
	OutOfStock          int                   `json:"outOfStock"`
	LowStockItems       int                   `json:"lowStockItems"`
	BestSellers         []ProductSales        `json:"bestSellers"`
	WorstProducts       []ProductSales        `json:"worstProducts"`
	CategoryPerformance []CategoryPerformance `json:"categoryPerformance"`
}

type ProductSales struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

type CategoryPerformance struct {
	Category  string  `json:"category"`
	Products  int     `json:"products"`
	TotalSold int     `json:"totalSold"`
	Revenue   float64 `json:"revenue"`
}

func convertPeriod(tr entity.TimeRange) Period {
	return Period{
		Days: int(tr.To.Sub(tr.From).Hours() / 24),
		From: tr.From.Format(dateLayout),
		To:   tr.To.Format(dateLayout),
	}
}

func convertCountPoints(points []entity.TimeSeriesPoint) []CountPoint {
	out := make([]CountPoint, 0, len(points))
	for _, p := range points {
		out = append(out, CountPoint{
			Date:  p.Date.Format(dateLayout),
			Value: p.Count,
		})
	}
	return out
}

func convertMoneyPoints(points []entity.TimeSeriesPoint) []MoneyPoint {
	out := make([]MoneyPoint, 0, len(points))
	for _, p := range points {
		out = append(out, MoneyPoint{
			Date:  p.Date.Format(dateLayout),
			Value: p.Value.InexactFloat64(),
		})
	}
	return out
}

// ConvertTrafficReportEntityToDTO maps the computed traffic report to its
// JSON shape.
func ConvertTrafficReportEntityToDTO(r *entity.TrafficReport) *TrafficReport {
	if r == nil {
		return nil
	}
	pages := make([]PagePerformance, 0, len(r.PopularPages))
	for _, pp := range r.PopularPages {
		pages = append(pages, PagePerformance{
			Page:    pp.URL,
			Title:   pp.Title,
			Visits:  pp.Visits,
			AvgTime: pp.AvgTime,
		})
	}
	sources := make([]TrafficSourceShare, 0, len(r.TrafficSources))
	for _, ts := range r.TrafficSources {
		sources = append(sources, TrafficSourceShare(ts))
	}
	devices := make([]DeviceShare, 0, len(r.DeviceShare))
	for _, ds := range r.DeviceShare {
		devices = append(devices, DeviceShare(ds))
	}
	return &TrafficReport{
		Period:             convertPeriod(r.Period),
		TotalPageviews:     r.TotalPageviews,
		TotalVisitors:      r.TotalVisitors,
		BounceRate:         r.BounceRate,
		AvgSessionDuration: r.AvgSessionDuration,
		ConversionRate:     r.ConversionRate,
		PageviewsGrowth:    r.PageviewsGrowth,
		VisitorsGrowth:     r.VisitorsGrowth,
		SessionGrowth:      r.SessionGrowth,
		BounceRateGrowth:   r.BounceRateGrowth,
		DailyData: TrafficDaily{
			Pageviews: convertCountPoints(r.PageviewsByDay),
			Visitors:  convertCountPoints(r.VisitorsByDay),
		},
		PopularPages:   pages,
		TrafficSources: sources,
		DeviceData:     devices,
	}
}

// ConvertFinancialReportEntityToDTO maps the computed financial report to
// its JSON shape.
func ConvertFinancialReportEntityToDTO(r *entity.FinancialReport) *FinancialReport {
	if r == nil {
		return nil
	}
	expenses := make([]ExpenseItem, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		expenses = append(expenses, ExpenseItem{
			Name:   e.Name,
			Amount: e.Amount.InexactFloat64(),
		})
	}
	daily := make([]DailyFinancePoint, 0, len(r.DailyFinance))
	for _, d := range r.DailyFinance {
		daily = append(daily, DailyFinancePoint{
			Date:         d.Date.Format(dateLayout),
			Revenue:      d.Revenue.InexactFloat64(),
			COGS:         d.COGS.InexactFloat64(),
			Profit:       d.Profit.InexactFloat64(),
			ProfitMargin: d.ProfitMargin,
		})
	}
	methods := make([]PaymentMethodMetric, 0, len(r.PaymentMethods))
	for _, m := range r.PaymentMethods {
		methods = append(methods, PaymentMethodMetric{
			Method:     m.Method,
			Count:      m.Count,
			Amount:     m.Amount.InexactFloat64(),
			Percentage: m.Percentage,
		})
	}
	top := make([]ProductRevenue, 0, len(r.TopRevenueProducts))
	for _, p := range r.TopRevenueProducts {
		top = append(top, ProductRevenue{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Revenue:     p.Revenue.InexactFloat64(),
			Quantity:    p.Quantity,
		})
	}
	pending := make([]PendingPayment, 0, len(r.PendingPayments))
	for _, p := range r.PendingPayments {
		pending = append(pending, PendingPayment{
			OrderID:       p.OrderID,
			OrderUUID:     p.OrderUUID,
			OrderNumber:   p.OrderNumber,
			CustomerName:  p.CustomerName,
			Amount:        p.Amount.InexactFloat64(),
			PaymentStatus: string(p.PaymentStatus),
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}
	return &FinancialReport{
		Period:             convertPeriod(r.Period),
		TotalRevenue:       r.TotalRevenue.InexactFloat64(),
		TotalCOGS:          r.TotalCOGS.InexactFloat64(),
		GrossProfit:        r.GrossProfit.InexactFloat64(),
		TotalExpenses:      r.TotalExpenses.InexactFloat64(),
		NetProfit:          r.NetProfit.InexactFloat64(),
		ProfitMargin:       r.ProfitMargin,
		NetProfitMargin:    r.NetProfitMargin,
		CompletedOrders:    r.CompletedOrders,
		AverageOrderValue:  r.AverageOrderValue.InexactFloat64(),
		RevenueGrowth:      r.RevenueGrowth,
		AverageOrderGrowth: r.AverageOrderGrowth,
		ExpenseData:        expenses,
		DailyData:          daily,
		PaymentMethodData:  methods,
		TopRevenueProducts: top,
		PendingPayments:    pending,
	}
}

// ConvertInventoryReportEntityToDTO maps the computed inventory report to
// its JSON shape.
func ConvertInventoryReportEntityToDTO(r *entity.InventoryReport) *InventoryReport {
	if r == nil {
		return nil
	}
	categories := make([]CategoryStock, 0, len(r.CategoryStock))
	for _, c := range r.CategoryStock {
		categories = append(categories, CategoryStock{
			Category:     c.Category,
			TotalStock:   c.TotalStock,
			TotalValue:   c.TotalValue.InexactFloat64(),
			ProductCount: c.ProductCount,
		})
	}
	alerts := make([]StockAlert, 0, len(r.StockAlerts))
	for _, a := range r.StockAlerts {
		alerts = append(alerts, StockAlert(a))
	}
	return &InventoryReport{
		Period:              convertPeriod(r.Period),
		TotalStock:          r.TotalStock,
		LowStockCount:       r.LowStockCount,
		OutOfStockCount:     r.OutOfStockCount,
		TotalInventoryValue: r.TotalInventoryValue.InexactFloat64(),
		StockMovementTrend:  r.StockMovementTrend,
		CategoryStockData:   categories,
		StockAlerts:         alerts,
	}
}

// ConvertCustomerReportEntityToDTO maps the computed customer report to its
// JSON shape.
func ConvertCustomerReportEntityToDTO(r *entity.CustomerReport) *CustomerReport {
	if r == nil {
		return nil
	}
	segments := make([]SegmentCount, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, SegmentCount(s))
	}
	top := make([]CustomerSpend, 0, len(r.TopCustomers))
	for _, c := range r.TopCustomers {
		top = append(top, CustomerSpend{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			OrderCount: c.OrderCount,
			TotalSpent: c.TotalSpent.InexactFloat64(),
		})
	}
	return &CustomerReport{
		Period:                convertPeriod(r.Period),
		TotalCustomers:        r.TotalCustomers,
		NewCustomers:          r.NewCustomers,
		ActiveCustomers:       r.ActiveCustomers,
		RetentionRate:         r.RetentionRate,
		CustomerLifetimeValue: r.CustomerLifetimeValue.InexactFloat64(),
		SegmentData:           segments,
		AcquisitionData:       convertCountPoints(r.AcquisitionByDay),
		TopCustomers:          top,
	}
}

func convertProductSales(sales []entity.ProductSales) []ProductSales {
	out := make([]ProductSales, 0, len(sales))
	for _, s := range sales {
		out = append(out, ProductSales{
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Category:    s.Category,
			Quantity:    s.Quantity,
			Revenue:     s.Revenue.InexactFloat64(),
		})
	}
	return out
}

// ConvertSalesReportEntityToDTO maps the computed sales report to its JSON
// shape.
func ConvertSalesReportEntityToDTO(r *entity.SalesReport) *SalesReport {
	if r == nil {
		return nil
	}
	statuses := make([]StatusCount, 0, len(r.OrdersByStatus))
	for _, s := range r.OrdersByStatus {
		statuses = append(statuses, StatusCount(s))
	}
	return &SalesReport{
		Period:          convertPeriod(r.Period),
		TotalOrders:     r.TotalOrders,
		CompletedOrders: r.CompletedOrders,
		TotalRevenue:    r.TotalRevenue.InexactFloat64(),
		RevenueGrowth:   r.RevenueGrowth,
		OrdersByStatus:  statuses,
		RevenueByDay:    convertMoneyPoints(r.RevenueByDay),
		BestSellers:     convertProductSales(r.BestSellers),
	}
}

// ConvertProductReportEntityToDTO maps the computed product report to its
// JSON shape.
func ConvertProductReportEntityToDTO(r *entity.ProductReport) *ProductReport {
	if r == nil {
		return nil
	}
	categories := make([]CategoryPerformance, 0, len(r.CategoryPerformance))
	for _, c := range r.CategoryPerformance {
		categories = append(categories, CategoryPerformance{
			Category:  c.Category,
			Products:  c.Products,
			TotalSold: c.TotalSold,
			Revenue:   c.Revenue.InexactFloat64(),
		})
	}
	return &ProductReport{
		Period:              convertPeriod(r.Period),
		TotalProducts:       r.TotalProducts,
		ActiveProducts:      r.ActiveProducts,
		OutOfStock:          r.OutOfStock,
		LowStockItems:       r.LowStockItems,
		BestSellers:         convertProductSales(r.BestSellers),
		WorstProducts:       convertProductSales(r.WorstProducts),
		CategoryPerformance: categories,
	}
}
