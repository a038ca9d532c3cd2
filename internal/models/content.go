// internal/models/content.go
package models

type Banner struct {
	BaseModel
	Title string `json:"title" gorm:"size:100;not null"`
	// Image holds the object key in the banner bucket, not a full URL.
	Image    string `json:"image" gorm:"size:255;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

type Tutorial struct {
	BaseModel
	Title    string   `json:"title" gorm:"size:100;not null"`
	VideoURL string   `json:"video_url" gorm:"size:200;not null"`
	Language Language `json:"language" gorm:"type:varchar(5);not null"`
}
