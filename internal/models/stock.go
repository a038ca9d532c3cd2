// internal/models/stock.go
package models

import "github.com/shopspring/decimal"

type StockItem struct {
	BaseModel
	Name         string          `json:"name" gorm:"size:100;not null"`
	Unit         string          `json:"unit" gorm:"size:20;not null"`
	OpeningStock decimal.Decimal `json:"opening_stock" gorm:"type:decimal(12,2);not null"`
	ClosingStock decimal.Decimal `json:"closing_stock" gorm:"type:decimal(12,2);default:0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" gorm:"type:decimal(12,2);not null"`
	BusinessID   uint            `json:"business_id" gorm:"not null"`
	Category     *string         `json:"category" gorm:"size:50"`
	Notes        *string         `json:"notes" gorm:"type:text"`

	Business *Business `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type StockTransaction struct {
	BaseModel
	StockItemID     uint                 `json:"stock_item_id" gorm:"not null"`
	TransactionType StockTransactionType `json:"transaction_type" gorm:"type:varchar(10);not null"`
	Quantity        decimal.Decimal      `json:"quantity" gorm:"type:decimal(12,2);not null"`
	Date            Date                 `json:"date" gorm:"not null"`
	Notes           *string              `json:"notes" gorm:"type:text"`

	StockItem *StockItem `json:"stock_item,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
