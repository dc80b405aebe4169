package report

import (
	"context"
	"fmt"
	"time"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/dependency"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// Config holds report defaults, set from the reports section of the
// service configuration.
type Config struct {
	DefaultPeriodDays int `mapstructure:"default_period_days"`
	TopProducts       int `mapstructure:"top_products"`
	TopCustomers      int `mapstructure:"top_customers"`
}

// Aggregator builds one report per call: resolve the period, fetch the
// window's rows, fold them into metrics. It holds no mutable state, so
// concurrent calls need no coordination; a failed fetch fails the whole
// report. The clock is injected so identical inputs and the same "now"
// always produce identical reports.
type Aggregator struct {
	repo         dependency.Reports
	now          func() time.Time
	days         int
	topProducts  int
	topCustomers int
}

// New creates an aggregator. A nil now falls back to time.Now.
func New(c *Config, repo dependency.Reports, now func() time.Time) *Aggregator {
	days := DefaultPeriodDays
	topProducts := defaultTopProducts
	topCustomers := defaultTopCustomers
	if c != nil {
		if c.DefaultPeriodDays > 0 {
			days = c.DefaultPeriodDays
		}
		if c.TopProducts > 0 {
			topProducts = c.TopProducts
		}
		if c.TopCustomers > 0 {
			topCustomers = c.TopCustomers
		}
	}
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		repo:         repo,
		now:          now,
		days:         days,
		topProducts:  topProducts,
		topCustomers: topCustomers,
	}
}

func (a *Aggregator) resolve(periodDays int) Period {
	if periodDays <= 0 {
		periodDays = a.days
	}
	return ResolvePeriod(periodDays, a.now())
}

// Traffic builds the traffic report for the last periodDays days.
func (a *Aggregator) Traffic(ctx context.Context, periodDays int) (*entity.TrafficReport, error) {
	p := a.resolve(periodDays)
	cur, err := a.repo.PageVisits(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("traffic: current visits: %w", err)
	}
	prev, err := a.repo.PageVisits(ctx, p.Previous.From, p.Previous.To)
	if err != nil {
		return nil, fmt.Errorf("traffic: previous visits: %w", err)
	}
	orders, err := a.repo.CompletedOrders(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("traffic: completed orders: %w", err)
	}
	return buildTrafficReport(p, cur, prev, len(orders)), nil
}

// Financial builds the financial report for the last periodDays days.
func (a *Aggregator) Financial(ctx context.Context, periodDays int) (*entity.FinancialReport, error) {
	p := a.resolve(periodDays)
	curOrders, err := a.repo.CompletedOrders(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("financial: current orders: %w", err)
	}
	prevOrders, err := a.repo.CompletedOrders(ctx, p.Previous.From, p.Previous.To)
	if err != nil {
		return nil, fmt.Errorf("financial: previous orders: %w", err)
	}
	curItems, err := a.repo.CompletedOrderItems(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("financial: current items: %w", err)
	}
	prevItems, err := a.repo.CompletedOrderItems(ctx, p.Previous.From, p.Previous.To)
	if err != nil {
		return nil, fmt.Errorf("financial: previous items: %w", err)
	}
	pending, err := a.repo.PendingPaymentOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("financial: pending payments: %w", err)
	}
	return buildFinancialReport(p, curOrders, prevOrders, curItems, prevItems, pending), nil
}

// Inventory builds the inventory report for the last periodDays days.
func (a *Aggregator) Inventory(ctx context.Context, periodDays int) (*entity.InventoryReport, error) {
	p := a.resolve(periodDays)
	products, err := a.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: products: %w", err)
	}
	curItems, err := a.repo.CompletedOrderItems(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("inventory: current items: %w", err)
	}
	prevItems, err := a.repo.CompletedOrderItems(ctx, p.Previous.From, p.Previous.To)
	if err != nil {
		return nil, fmt.Errorf("inventory: previous items: %w", err)
	}
	return buildInventoryReport(p, products, curItems, prevItems), nil
}

// Customers builds the customer report for the last periodDays days.
func (a *Aggregator) Customers(ctx context.Context, periodDays int) (*entity.CustomerReport, error) {
	p := a.resolve(periodDays)
	customers, err := a.repo.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	return buildCustomerReport(p, customers, a.topCustomers), nil
}

// Sales builds the order-centric sales report for the last periodDays days.
func (a *Aggregator) Sales(ctx context.Context, periodDays int) (*entity.SalesReport, error) {
	p := a.resolve(periodDays)
	windowOrders, err := a.repo.OrdersInWindow(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("sales: window orders: %w", err)
	}
	curCompleted, err := a.repo.CompletedOrders(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("sales: current completed: %w", err)
	}
	prevCompleted, err := a.repo.CompletedOrders(ctx, p.Previous.From, p.Previous.To)
	if err != nil {
		return nil, fmt.Errorf("sales: previous completed: %w", err)
	}
	curItems, err := a.repo.CompletedOrderItems(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("sales: current items: %w", err)
	}
	return buildSalesReport(p, windowOrders, curCompleted, prevCompleted, curItems, a.topProducts), nil
}

// Products builds the catalog-centric product report for the last
// periodDays days. includeZeroSales pulls unsold products into the worst
// performers list.
func (a *Aggregator) Products(ctx context.Context, periodDays int, includeZeroSales bool) (*entity.ProductReport, error) {
	p := a.resolve(periodDays)
	products, err := a.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("products: catalog: %w", err)
	}
	curItems, err := a.repo.CompletedOrderItems(ctx, p.Current.From, p.Current.To)
	if err != nil {
		return nil, fmt.Errorf("products: current items: %w", err)
	}
	return buildProductReport(p, products, curItems, includeZeroSales, a.topProducts), nil
}
