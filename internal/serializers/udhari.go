// internal/serializers/udhari.go
package serializers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bahiapp/bahi-backend/internal/models"
)

type CustomerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Business  uint      `json:"business"`
	CreatedAt time.Time `json:"created_at"`
}

func Customer(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Business:  c.BusinessID,
		CreatedAt: c.CreatedAt,
	}
}

func Customers(items []models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(items))
	for i := range items {
		out = append(out, Customer(&items[i]))
	}
	return out
}

type UdhariResponse struct {
	ID        uint                `json:"id"`
	Customer  *CustomerResponse   `json:"customer"`
	Amount    decimal.Decimal     `json:"amount"`
	Given     bool                `json:"given"`
	Date      models.Date         `json:"date"`
	DueDate   *models.Date        `json:"due_date"`
	Status    models.UdhariStatus `json:"status"`
	Notes     *string             `json:"notes"`
	Reminder  bool                `json:"reminder"`
	CreatedAt time.Time           `json:"created_at"`
}

func Udhari(u *models.Udhari) UdhariResponse {
	resp := UdhariResponse{
		ID:        u.ID,
		Amount:    u.Amount,
		Given:     u.Given,
		Date:      u.Date,
		DueDate:   u.DueDate,
		Status:    u.Status,
		Notes:     u.Notes,
		Reminder:  u.Reminder,
		CreatedAt: u.CreatedAt,
	}
	if u.Customer != nil {
		customer := Customer(u.Customer)
		resp.Customer = &customer
	}
	return resp
}

func Udharis(items []models.Udhari) []UdhariResponse {
	out := make([]UdhariResponse, 0, len(items))
	for i := range items {
		out = append(out, Udhari(&items[i]))
	}
	return out
}
