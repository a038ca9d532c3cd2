// internal/models/admin.go
package models

type AdminActivityLog struct {
	BaseModel
	UserID  uint    `json:"user_id" gorm:"not null"`
	Action  string  `json:"action" gorm:"size:100;not null"`
	Details *string `json:"details" gorm:"type:text"`

	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type AdminRole struct {
	BaseModel
	Name        string `json:"name" gorm:"size:50;not null"`
	Permissions string `json:"permissions" gorm:"type:text;not null"`

	Users []User `json:"users,omitempty" gorm:"many2many:admin_role_users"`
}
