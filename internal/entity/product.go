package entity

import "github.com/shopspring/decimal"

// Category represents the category table
type Category struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// Product represents the product table joined with its category name.
type Product struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	Price        decimal.Decimal `db:"price"`
	Stock        int             `db:"stock"`
	CategoryID   int             `db:"category_id"`
	CategoryName string          `db:"category_name"`
}

// StockValue is stock * current price.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
