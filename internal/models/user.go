// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string   `json:"username" gorm:"uniqueIndex;size:150;not null"`
	FirstName    string   `json:"first_name" gorm:"size:150"`
	LastName     string   `json:"last_name" gorm:"size:150"`
	Email        string   `json:"email" gorm:"size:255"`
	PasswordHash string   `json:"-" gorm:"size:255"`
	Phone        *string  `json:"phone" gorm:"uniqueIndex;size:15"`
	Language     Language `json:"language" gorm:"type:varchar(5);default:'en'"`
	BusinessID   *uint    `json:"business_id"`
	IsPremium    bool     `json:"is_premium" gorm:"default:false"`
	ReferralCode *string  `json:"referral_code" gorm:"size:20"`
	ReferredBy   *string  `json:"referred_by" gorm:"size:20"`
	AppLocked    bool     `json:"app_locked" gorm:"default:false"`
	HealthScore  int      `json:"health_score" gorm:"default:100"`
	Notes        *string  `json:"notes" gorm:"type:text"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`

	// The business the user currently works in. Nulled when that business
	// is deleted; distinct from the businesses the user owns.
	Business *Business `json:"business,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

type Business struct {
	BaseModel
	Name    string  `json:"name" gorm:"size:100;not null"`
	Type    *string `json:"type" gorm:"size:50"`
	OwnerID uint    `json:"owner_id" gorm:"not null"`

	Owner *User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
