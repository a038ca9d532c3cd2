// internal/serializers/ledger.go
package serializers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bahiapp/bahi-backend/internal/models"
)

type CategoryResponse struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Type     models.EntryType `json:"type"`
	Business uint             `json:"business"`
	Default  bool             `json:"default"`
}

func Category(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Type:     c.Type,
		Business: c.BusinessID,
		Default:  c.Default,
	}
}

func Categories(items []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(items))
	for i := range items {
		out = append(out, Category(&items[i]))
	}
	return out
}

type IncomeExpenseResponse struct {
	ID          uint              `json:"id"`
	User        uint              `json:"user"`
	Business    uint              `json:"business"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        models.EntryType  `json:"type"`
	Category    *CategoryResponse `json:"category"`
	Date        models.Date       `json:"date"`
	Time        *models.TimeOfDay `json:"time"`
	PaymentMode *string           `json:"payment_mode"`
	Notes       *string           `json:"notes"`
	CreatedAt   time.Time         `json:"created_at"`
	VoiceEntry  bool              `json:"voice_entry"`
}

func IncomeExpense(e *models.IncomeExpense) IncomeExpenseResponse {
	resp := IncomeExpenseResponse{
		ID:          e.ID,
		User:        e.UserID,
		Business:    e.BusinessID,
		Amount:      e.Amount,
		Type:        e.Type,
		Date:        e.Date,
		Time:        e.Time,
		PaymentMode: e.PaymentMode,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		VoiceEntry:  e.VoiceEntry,
	}
	if e.Category != nil {
		category := Category(e.Category)
		resp.Category = &category
	}
	return resp
}

func IncomeExpenses(items []models.IncomeExpense) []IncomeExpenseResponse {
	out := make([]IncomeExpenseResponse, 0, len(items))
	for i := range items {
		out = append(out, IncomeExpense(&items[i]))
	}
	return out
}
