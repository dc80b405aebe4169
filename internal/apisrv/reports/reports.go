package reports

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	v "github.com/asaskevich/govalidator"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/dto"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/report"
)

// Server implements handlers for report requests.
type Server struct {
	agg *report.Aggregator
}

// New creates a new server with report handlers.
func New(agg *report.Aggregator) *Server {
	return &Server{
		agg: agg,
	}
}

// ParsePeriod turns the raw "period" query value into a day count. Empty or
// malformed values resolve to 0, which the aggregator replaces with its
// configured default.
func ParsePeriod(raw string) int {
	if raw == "" || !v.IsInt(raw) {
		return 0
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return days
}

func (s *Server) Traffic(ctx context.Context, periodDays int) (*dto.TrafficReport, error) {
	r, err := s.agg.Traffic(ctx, periodDays)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build traffic report",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't build traffic report: %w", err)
	}
	return dto.ConvertTrafficReportEntityToDTO(r), nil
}

func (s *Server) Financial(ctx context.Context, periodDays int) (*dto.FinancialReport, error) {
	r, err := s.agg.Financial(ctx, periodDays)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build financial report",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't build financial report: %w", err)
	}
	return dto.ConvertFinancialReportEntityToDTO(r), nil
}

func (s *Server) Inventory(ctx context.Context, periodDays int) (*dto.InventoryReport, error) {
	r, err := s.agg.Inventory(ctx, periodDays)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build inventory report",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't build inventory report: %w", err)
	}
	return dto.ConvertInventoryReportEntityToDTO(r), nil
}

func (s *Server) Customers(ctx context.Context, periodDays int) (*dto.CustomerReport, error) {
	r, err := s.agg.Customers(ctx, periodDays)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build customer report",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't build customer report: %w", err)
	}
	return dto.ConvertCustomerReportEntityToDTO(r), nil
}

func (s *Server) Sales(ctx context.Context, periodDays int) (*dto.SalesReport, error) {
	r, err := s.agg.Sales(ctx, periodDays)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build sales report",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't build sales report: %w", err)
	}
	return dto.ConvertSalesReportEntityToDTO(r), nil
}

func (s *Server) Products(ctx context.Context, periodDays int, includeZeroSales bool) (*dto.ProductReport, error) {
	r, err := s.agg.Products(ctx, periodDays, includeZeroSales)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build product report",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't build product report: %w", err)
	}
	return dto.ConvertProductReportEntityToDTO(r), nil
}
