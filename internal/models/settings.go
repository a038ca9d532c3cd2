// internal/models/settings.go
package models

type ProfileSettings struct {
	BaseModel
	UserID        uint     `json:"user_id" gorm:"uniqueIndex;not null"`
	Language      Language `json:"language" gorm:"type:varchar(5);default:'en'"`
	AppLock       bool     `json:"app_lock" gorm:"default:false"`
	AIAlerts      bool     `json:"ai_alerts" gorm:"column:ai_alerts;default:true"`
	FinanceTips   bool     `json:"finance_tips" gorm:"default:true"`
	MultiBusiness bool     `json:"multi_business" gorm:"default:false"`
	CalendarView  bool     `json:"calendar_view" gorm:"default:true"`

	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
