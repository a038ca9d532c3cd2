// internal/serializers/user.go

// Package serializers defines the wire representation of every entity as an
// explicit field allowlist. Writes accept bare foreign-key ids; reads expand
// a few relations inline as nested objects. Credentials never appear here.
package serializers

import (
	"time"

	"github.com/bahiapp/bahi-backend/internal/models"
)

type BusinessResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Type      *string   `json:"type"`
	Owner     uint      `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

func Business(b *models.Business) BusinessResponse {
	return BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		Owner:     b.OwnerID,
		CreatedAt: b.CreatedAt,
	}
}

func Businesses(items []models.Business) []BusinessResponse {
	out := make([]BusinessResponse, 0, len(items))
	for i := range items {
		out = append(out, Business(&items[i]))
	}
	return out
}

type UserResponse struct {
	ID           uint              `json:"id"`
	Username     string            `json:"username"`
	Email        string            `json:"email"`
	Phone        *string           `json:"phone"`
	Language     models.Language   `json:"language"`
	Business     *BusinessResponse `json:"business"`
	IsPremium    bool              `json:"is_premium"`
	ReferralCode *string           `json:"referral_code"`
	ReferredBy   *string           `json:"referred_by"`
	AppLocked    bool              `json:"app_locked"`
	HealthScore  int               `json:"health_score"`
	Notes        *string           `json:"notes"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	IsActive     bool              `json:"is_active"`
	DateJoined   time.Time         `json:"date_joined"`
	LastLogin    *time.Time        `json:"last_login"`
}

func User(u *models.User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		Language:     u.Language,
		IsPremium:    u.IsPremium,
		ReferralCode: u.ReferralCode,
		ReferredBy:   u.ReferredBy,
		AppLocked:    u.AppLocked,
		HealthScore:  u.HealthScore,
		Notes:        u.Notes,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsActive:     u.IsActive,
		DateJoined:   u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
	if u.Business != nil {
		business := Business(u.Business)
		resp.Business = &business
	}
	return resp
}

func Users(items []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for i := range items {
		out = append(out, User(&items[i]))
	}
	return out
}
