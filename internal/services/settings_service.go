// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bahiapp/bahi-backend/internal/models"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

// SettingsService is the repository for per-user profile settings. Each
// user owns at most one settings row.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

type CreateSettingsRequest struct {
	UserID        *uint           `json:"user" validate:"required"`
	Language      models.Language `json:"language" validate:"omitempty,oneof=en hi mr"`
	AppLock       *bool           `json:"app_lock"`
	AIAlerts      *bool           `json:"ai_alerts"`
	FinanceTips   *bool           `json:"finance_tips"`
	MultiBusiness *bool           `json:"multi_business"`
	CalendarView  *bool           `json:"calendar_view"`
}

type UpdateSettingsRequest struct {
	UserID        *uint            `json:"user"`
	Language      *models.Language `json:"language" validate:"omitempty,oneof=en hi mr"`
	AppLock       *bool            `json:"app_lock"`
	AIAlerts      *bool            `json:"ai_alerts"`
	FinanceTips   *bool            `json:"finance_tips"`
	MultiBusiness *bool            `json:"multi_business"`
	CalendarView  *bool            `json:"calendar_view"`
}

func (s *SettingsService) checkUser(userID uint, excludeID uint) (utils.FieldErrors, error) {
	fieldErrs := make(utils.FieldErrors)

	ok, err := pkExists(s.db, &models.User{}, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs.Add("user", invalidPKMessage(userID))
		return fieldErrs, nil
	}

	q := s.db.Model(&models.ProfileSettings{}).Where("user_id = ?", userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check settings owner: %w", err)
	}
	if count > 0 {
		fieldErrs.Add("user", uniqueMessage())
	}

	return fieldErrs, nil
}

func (s *SettingsService) List() ([]models.ProfileSettings, error) {
	var settings []models.ProfileSettings
	if err := s.db.Order("id").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) Get(id uint) (*models.ProfileSettings, error) {
	var settings models.ProfileSettings
	if err := s.db.First(&settings, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

func (s *SettingsService) Create(req *CreateSettingsRequest) (*models.ProfileSettings, error) {
	fieldErrs, err := s.checkUser(*req.UserID, 0)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	settings := models.ProfileSettings{
		UserID:        *req.UserID,
		Language:      models.LanguageEnglish,
		AIAlerts:      true,
		FinanceTips:   true,
		CalendarView:  true,
		MultiBusiness: false,
	}
	if req.Language != "" {
		settings.Language = req.Language
	}
	if req.AppLock != nil {
		settings.AppLock = *req.AppLock
	}
	if req.AIAlerts != nil {
		settings.AIAlerts = *req.AIAlerts
	}
	if req.FinanceTips != nil {
		settings.FinanceTips = *req.FinanceTips
	}
	if req.MultiBusiness != nil {
		settings.MultiBusiness = *req.MultiBusiness
	}
	if req.CalendarView != nil {
		settings.CalendarView = *req.CalendarView
	}

	if err := s.db.Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}
	return &settings, nil
}

func (s *SettingsService) Update(id uint, req *UpdateSettingsRequest) (*models.ProfileSettings, error) {
	settings, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		fieldErrs, err := s.checkUser(*req.UserID, id)
		if err != nil {
			return nil, err
		}
		if len(fieldErrs) > 0 {
			return nil, fieldErrs
		}
		settings.UserID = *req.UserID
	}

	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.AppLock != nil {
		settings.AppLock = *req.AppLock
	}
	if req.AIAlerts != nil {
		settings.AIAlerts = *req.AIAlerts
	}
	if req.FinanceTips != nil {
		settings.FinanceTips = *req.FinanceTips
	}
	if req.MultiBusiness != nil {
		settings.MultiBusiness = *req.MultiBusiness
	}
	if req.CalendarView != nil {
		settings.CalendarView = *req.CalendarView
	}

	if err := s.db.Omit(clause.Associations).Save(settings).Error; err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) Delete(id uint) error {
	settings, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(settings).Error; err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
