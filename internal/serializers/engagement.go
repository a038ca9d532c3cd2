// internal/serializers/engagement.go
package serializers

import (
	"time"

	"github.com/bahiapp/bahi-backend/internal/models"
)

type NotificationResponse struct {
	ID       uint      `json:"id"`
	User     uint      `json:"user"`
	Business *uint     `json:"business"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"sent_at"`
	Opened   bool      `json:"opened"`
}

func Notification(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:       n.ID,
		User:     n.UserID,
		Business: n.BusinessID,
		Title:    n.Title,
		Message:  n.Message,
		SentAt:   n.CreatedAt,
		Opened:   n.Opened,
	}
}

func Notifications(items []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for i := range items {
		out = append(out, Notification(&items[i]))
	}
	return out
}

type FeedbackTicketResponse struct {
	ID         uint                `json:"id"`
	User       uint                `json:"user"`
	Tag        models.TicketTag    `json:"tag"`
	Message    string              `json:"message"`
	Status     models.TicketStatus `json:"status"`
	AssignedTo *uint               `json:"assigned_to"`
	CreatedAt  time.Time           `json:"created_at"`
}

func FeedbackTicket(t *models.FeedbackTicket) FeedbackTicketResponse {
	return FeedbackTicketResponse{
		ID:         t.ID,
		User:       t.UserID,
		Tag:        t.Tag,
		Message:    t.Message,
		Status:     t.Status,
		AssignedTo: t.AssignedToID,
		CreatedAt:  t.CreatedAt,
	}
}

func FeedbackTickets(items []models.FeedbackTicket) []FeedbackTicketResponse {
	out := make([]FeedbackTicketResponse, 0, len(items))
	for i := range items {
		out = append(out, FeedbackTicket(&items[i]))
	}
	return out
}

type ProfileSettingsResponse struct {
	ID            uint            `json:"id"`
	User          uint            `json:"user"`
	Language      models.Language `json:"language"`
	AppLock       bool            `json:"app_lock"`
	AIAlerts      bool            `json:"ai_alerts"`
	FinanceTips   bool            `json:"finance_tips"`
	MultiBusiness bool            `json:"multi_business"`
	CalendarView  bool            `json:"calendar_view"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ProfileSettings(p *models.ProfileSettings) ProfileSettingsResponse {
	return ProfileSettingsResponse{
		ID:            p.ID,
		User:          p.UserID,
		Language:      p.Language,
		AppLock:       p.AppLock,
		AIAlerts:      p.AIAlerts,
		FinanceTips:   p.FinanceTips,
		MultiBusiness: p.MultiBusiness,
		CalendarView:  p.CalendarView,
		CreatedAt:     p.CreatedAt,
	}
}

func ProfileSettingsList(items []models.ProfileSettings) []ProfileSettingsResponse {
	out := make([]ProfileSettingsResponse, 0, len(items))
	for i := range items {
		out = append(out, ProfileSettings(&items[i]))
	}
	return out
}

type BannerResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Banner takes the resolved public URL so the serializer stays free of
// storage concerns.
func Banner(b *models.Banner, imageURL string) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		Image:     b.Image,
		ImageURL:  imageURL,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

type TutorialResponse struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	VideoURL  string          `json:"video_url"`
	Language  models.Language `json:"language"`
	CreatedAt time.Time       `json:"created_at"`
}

func Tutorial(t *models.Tutorial) TutorialResponse {
	return TutorialResponse{
		ID:        t.ID,
		Title:     t.Title,
		VideoURL:  t.VideoURL,
		Language:  t.Language,
		CreatedAt: t.CreatedAt,
	}
}

func Tutorials(items []models.Tutorial) []TutorialResponse {
	out := make([]TutorialResponse, 0, len(items))
	for i := range items {
		out = append(out, Tutorial(&items[i]))
	}
	return out
}
