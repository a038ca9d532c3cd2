// internal/models/notification.go
package models

type Notification struct {
	BaseModel
	UserID     uint   `json:"user_id" gorm:"not null"`
	BusinessID *uint  `json:"business_id"`
	Title      string `json:"title" gorm:"size:100;not null"`
	Message    string `json:"message" gorm:"type:text;not null"`
	Opened     bool   `json:"opened" gorm:"default:false"`

	User     *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Business *Business `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
