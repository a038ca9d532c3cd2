// internal/serializers/stock.go
package serializers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bahiapp/bahi-backend/internal/models"
)

type StockItemResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
	ClosingStock decimal.Decimal `json:"closing_stock"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Business     uint            `json:"business"`
	Category     *string         `json:"category"`
	Notes        *string         `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
}

func StockItem(s *models.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:           s.ID,
		Name:         s.Name,
		Unit:         s.Unit,
		OpeningStock: s.OpeningStock,
		ClosingStock: s.ClosingStock,
		PricePerUnit: s.PricePerUnit,
		Business:     s.BusinessID,
		Category:     s.Category,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}

func StockItems(items []models.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for i := range items {
		out = append(out, StockItem(&items[i]))
	}
	return out
}

type StockTransactionResponse struct {
	ID              uint                        `json:"id"`
	StockItem       *StockItemResponse          `json:"stock_item"`
	TransactionType models.StockTransactionType `json:"transaction_type"`
	Quantity        decimal.Decimal             `json:"quantity"`
	Date            models.Date                 `json:"date"`
	Notes           *string                     `json:"notes"`
	CreatedAt       time.Time                   `json:"created_at"`
}

func StockTransaction(t *models.StockTransaction) StockTransactionResponse {
	resp := StockTransactionResponse{
		ID:              t.ID,
		TransactionType: t.TransactionType,
		Quantity:        t.Quantity,
		Date:            t.Date,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
	if t.StockItem != nil {
		item := StockItem(t.StockItem)
		resp.StockItem = &item
	}
	return resp
}

func StockTransactions(items []models.StockTransaction) []StockTransactionResponse {
	out := make([]StockTransactionResponse, 0, len(items))
	for i := range items {
		out = append(out, StockTransaction(&items[i]))
	}
	return out
}
