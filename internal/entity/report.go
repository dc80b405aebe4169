package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is a half-open [From, To) window.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// TimeSeriesPoint is one dense daily bucket.
type TimeSeriesPoint struct {
	Date  time.Time
	Value decimal.Decimal
	Count int
}

// TrafficReport contains all computed traffic metrics for a reporting period.
type TrafficReport struct {
	Period TimeRange

	TotalPageviews     int
	TotalVisitors      int
	BounceRate         float64
	AvgSessionDuration float64
	ConversionRate     float64 // completed orders / distinct visitors

	PageviewsGrowth  float64
	VisitorsGrowth   float64
	SessionGrowth    float64
	BounceRateGrowth float64

	PageviewsByDay []TimeSeriesPoint
	VisitorsByDay  []TimeSeriesPoint

	PopularPages   []PagePerformance
	TrafficSources []TrafficSourceShare
	DeviceShare    []DeviceShare
}

type PagePerformance struct {
	URL     string
	Title   string
	Visits  int
	AvgTime float64 // mean duration in seconds
}

type TrafficSourceShare struct {
	Source     string
	Visits     int
	Percentage float64
}

// DeviceShare counts distinct visitors per device class, not visits.
type DeviceShare struct {
	Device     string
	Visitors   int
	Percentage float64
}

// FinancialReport contains revenue, COGS, expense and profit metrics.
type FinancialReport struct {
	Period TimeRange

	TotalRevenue    decimal.Decimal
	TotalCOGS       decimal.Decimal
	GrossProfit     decimal.Decimal
	TotalExpenses   decimal.Decimal
	NetProfit       decimal.Decimal
	ProfitMargin    float64
	NetProfitMargin float64

	CompletedOrders   int
	AverageOrderValue decimal.Decimal

	RevenueGrowth      float64
	AverageOrderGrowth float64

	Expenses []ExpenseItem

	DailyFinance       []DailyFinancePoint
	PaymentMethods     []PaymentMethodMetric
	TopRevenueProducts []ProductRevenue
	PendingPayments    []PendingPayment
}

type ExpenseItem struct {
	Name   string
	Amount decimal.Decimal
}

type DailyFinancePoint struct {
	Date         time.Time
	Revenue      decimal.Decimal
	COGS         decimal.Decimal
	Profit       decimal.Decimal
	ProfitMargin float64
}

// PaymentMethodMetric aggregates orders by destination bank label.
type PaymentMethodMetric struct {
	Method     string
	Count      int
	Amount     decimal.Decimal
	Percentage float64
}

type ProductRevenue struct {
	ProductID   int
	ProductName string
	Revenue     decimal.Decimal
	Quantity    int
}

// PendingPayment is an as-of-now snapshot row, never windowed.
type PendingPayment struct {
	OrderID       int
	OrderUUID     string
	OrderNumber   string
	CustomerName  string
	Amount        decimal.Decimal
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// InventoryReport contains current stock levels and movement trend.
type InventoryReport struct {
	Period TimeRange

	TotalStock          int
	LowStockCount       int
	OutOfStockCount     int
	TotalInventoryValue decimal.Decimal
	StockMovementTrend  float64

	CategoryStock []CategoryStock
	StockAlerts   []StockAlert
}

type CategoryStock struct {
	Category     string
	TotalStock   int
	TotalValue   decimal.Decimal
	ProductCount int
}

type StockAlert struct {
	ProductID   int
	ProductName string
	Type        string // out_of_stock, low_stock
	Severity    string // high, medium
	Message     string
}

// CustomerReport contains acquisition, retention and segmentation metrics.
type CustomerReport struct {
	Period TimeRange

	TotalCustomers        int
	NewCustomers          int
	ActiveCustomers       int
	RetentionRate         float64
	CustomerLifetimeValue decimal.Decimal

	Segments         []SegmentCount
	AcquisitionByDay []TimeSeriesPoint
	TopCustomers     []CustomerSpend
}

type SegmentCount struct {
	Segment string
	Count   int
}

type CustomerSpend struct {
	ID         int
	Name       string
	Email      string
	OrderCount int
	TotalSpent decimal.Decimal
}

// SalesReport is the order-centric view of a period.
type SalesReport struct {
	Period TimeRange

	TotalOrders     int
	CompletedOrders int
	TotalRevenue    decimal.Decimal
	RevenueGrowth   float64

	OrdersByStatus []StatusCount
	RevenueByDay   []TimeSeriesPoint
	BestSellers    []ProductSales
}

type StatusCount struct {
	Status string
	Count  int
}

// ProductReport is the catalog-centric view of a period.
type ProductReport struct {
	Period TimeRange

	TotalProducts  int
	ActiveProducts int
	OutOfStock     int
	LowStockItems  int

	BestSellers         []ProductSales
	WorstProducts       []ProductSales
	CategoryPerformance []CategoryPerformance
}

type ProductSales struct {
	ProductID   int
	ProductName string
	Category    string
	Quantity    int
	Revenue     decimal.Decimal
}

type CategoryPerformance struct {
	Category  string
	Products  int
	TotalSold int
	Revenue   decimal.Decimal
}
