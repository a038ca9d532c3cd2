// internal/serializers/admin.go
package serializers

import (
	"time"

	"github.com/bahiapp/bahi-backend/internal/models"
)

type ReportExportResponse struct {
	ID         uint      `json:"id"`
	User       uint      `json:"user"`
	Business   uint      `json:"business"`
	ReportType string    `json:"report_type"`
	FilePath   string    `json:"file_path"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReportExport(r *models.ReportExport) ReportExportResponse {
	return ReportExportResponse{
		ID:         r.ID,
		User:       r.UserID,
		Business:   r.BusinessID,
		ReportType: r.ReportType,
		FilePath:   r.FilePath,
		CreatedAt:  r.CreatedAt,
	}
}

func ReportExports(items []models.ReportExport) []ReportExportResponse {
	out := make([]ReportExportResponse, 0, len(items))
	for i := range items {
		out = append(out, ReportExport(&items[i]))
	}
	return out
}

type AdminActivityLogResponse struct {
	ID        uint      `json:"id"`
	User      uint      `json:"user"`
	Action    string    `json:"action"`
	Details   *string   `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func AdminActivityLog(l *models.AdminActivityLog) AdminActivityLogResponse {
	return AdminActivityLogResponse{
		ID:        l.ID,
		User:      l.UserID,
		Action:    l.Action,
		Details:   l.Details,
		Timestamp: l.CreatedAt,
	}
}

func AdminActivityLogs(items []models.AdminActivityLog) []AdminActivityLogResponse {
	out := make([]AdminActivityLogResponse, 0, len(items))
	for i := range items {
		out = append(out, AdminActivityLog(&items[i]))
	}
	return out
}

type AdminRoleResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Permissions string    `json:"permissions"`
	Users       []uint    `json:"users"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdminRole(r *models.AdminRole) AdminRoleResponse {
	users := make([]uint, 0, len(r.Users))
	for i := range r.Users {
		users = append(users, r.Users[i].ID)
	}
	return AdminRoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		Users:       users,
		CreatedAt:   r.CreatedAt,
	}
}

func AdminRoles(items []models.AdminRole) []AdminRoleResponse {
	out := make([]AdminRoleResponse, 0, len(items))
	for i := range items {
		out = append(out, AdminRole(&items[i]))
	}
	return out
}
