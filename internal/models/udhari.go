// internal/models/udhari.go
package models

import "github.com/shopspring/decimal"

type Customer struct {
	BaseModel
	Name       string  `json:"name" gorm:"size:100;not null"`
	Phone      *string `json:"phone" gorm:"size:15"`
	BusinessID uint    `json:"business_id" gorm:"not null"`

	Business *Business `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Udhari is a single credit-ledger entry against a customer. Given true
// means the business handed out credit, false means it received a payment.
type Udhari struct {
	BaseModel
	CustomerID uint            `json:"customer_id" gorm:"not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Given      bool            `json:"given" gorm:"not null"`
	Date       Date            `json:"date" gorm:"not null"`
	DueDate    *Date           `json:"due_date"`
	Status     UdhariStatus    `json:"status" gorm:"type:varchar(10);default:'unpaid'"`
	Notes      *string         `json:"notes" gorm:"type:text"`
	Reminder   bool            `json:"reminder" gorm:"default:false"`

	Customer *Customer `json:"customer,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
