// internal/models/ledger.go
package models

import "github.com/shopspring/decimal"

type Category struct {
	BaseModel
	Name       string    `json:"name" gorm:"size:50;not null"`
	Type       EntryType `json:"type" gorm:"type:varchar(10);not null"`
	BusinessID uint      `json:"business_id" gorm:"not null"`
	// Default marks the seed categories created with the business.
	Default bool `json:"default" gorm:"default:false"`

	Business *Business `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type IncomeExpense struct {
	BaseModel
	UserID      uint            `json:"user_id" gorm:"not null"`
	BusinessID  uint            `json:"business_id" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Type        EntryType       `json:"type" gorm:"type:varchar(10);not null"`
	CategoryID  *uint           `json:"category_id"`
	Date        Date            `json:"date" gorm:"not null"`
	Time        *TimeOfDay      `json:"time"`
	PaymentMode *string         `json:"payment_mode" gorm:"size:20"`
	Notes       *string         `json:"notes" gorm:"type:text"`
	VoiceEntry  bool            `json:"voice_entry" gorm:"default:false"`

	User     *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Business *Business `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Category *Category `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}
