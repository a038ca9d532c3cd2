// internal/models/report.go
package models

// ReportExport logs a requested export. The file itself lives in the
// storage backend; FilePath is its object key.
type ReportExport struct {
	BaseModel
	UserID     uint   `json:"user_id" gorm:"not null"`
	BusinessID uint   `json:"business_id" gorm:"not null"`
	ReportType string `json:"report_type" gorm:"size:50;not null"`
	FilePath   string `json:"file_path" gorm:"size:255;not null"`

	User     *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Business *Business `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
