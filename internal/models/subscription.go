// internal/models/subscription.go
package models

import "github.com/shopspring/decimal"

type Plan struct {
	BaseModel
	Name           string          `json:"name" gorm:"size:50;not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(8,2);not null"`
	DurationMonths int             `json:"duration_months" gorm:"not null"`
	IsActive       bool            `json:"is_active" gorm:"default:true"`
}

type Subscription struct {
	BaseModel
	UserID    uint `json:"user_id" gorm:"not null"`
	PlanID    uint `json:"plan_id" gorm:"not null"`
	StartDate Date `json:"start_date" gorm:"not null"`
	EndDate   Date `json:"end_date" gorm:"not null"`
	IsActive  bool `json:"is_active" gorm:"default:true"`
	AutoRenew bool `json:"auto_renew" gorm:"default:false"`

	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Plan *Plan `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type Coupon struct {
	BaseModel
	Code            string `json:"code" gorm:"uniqueIndex;size:20;not null"`
	DiscountPercent int    `json:"discount_percent" gorm:"not null"`
	ValidFrom       Date   `json:"valid_from" gorm:"not null"`
	ValidTo         Date   `json:"valid_to" gorm:"not null"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
}
