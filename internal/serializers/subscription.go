// internal/serializers/subscription.go
package serializers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bahiapp/bahi-backend/internal/models"
)

type PlanResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	DurationMonths int             `json:"duration_months"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
}

func Plan(p *models.Plan) PlanResponse {
	return PlanResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		DurationMonths: p.DurationMonths,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

func Plans(items []models.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(items))
	for i := range items {
		out = append(out, Plan(&items[i]))
	}
	return out
}

type SubscriptionResponse struct {
	ID        uint        `json:"id"`
	User      uint        `json:"user"`
	Plan      uint        `json:"plan"`
	StartDate models.Date `json:"start_date"`
	EndDate   models.Date `json:"end_date"`
	IsActive  bool        `json:"is_active"`
	AutoRenew bool        `json:"auto_renew"`
	CreatedAt time.Time   `json:"created_at"`
}

func Subscription(s *models.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		User:      s.UserID,
		Plan:      s.PlanID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsActive:  s.IsActive,
		AutoRenew: s.AutoRenew,
		CreatedAt: s.CreatedAt,
	}
}

func Subscriptions(items []models.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(items))
	for i := range items {
		out = append(out, Subscription(&items[i]))
	}
	return out
}

type CouponResponse struct {
	ID              uint        `json:"id"`
	Code            string      `json:"code"`
	DiscountPercent int         `json:"discount_percent"`
	ValidFrom       models.Date `json:"valid_from"`
	ValidTo         models.Date `json:"valid_to"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
}

func Coupon(c *models.Coupon) CouponResponse {
	return CouponResponse{
		ID:              c.ID,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		ValidFrom:       c.ValidFrom,
		ValidTo:         c.ValidTo,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}

func Coupons(items []models.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(items))
	for i := range items {
		out = append(out, Coupon(&items[i]))
	}
	return out
}
