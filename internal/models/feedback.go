// internal/models/feedback.go
package models

type FeedbackTicket struct {
	BaseModel
	UserID       uint         `json:"user_id" gorm:"not null"`
	Tag          TicketTag    `json:"tag" gorm:"type:varchar(20);not null"`
	Message      string       `json:"message" gorm:"type:text;not null"`
	Status       TicketStatus `json:"status" gorm:"type:varchar(10);default:'open'"`
	AssignedToID *uint        `json:"assigned_to_id"`

	User       *User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	AssignedTo *User `json:"-" gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
}
