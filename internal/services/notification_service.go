// internal/services/notification_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bahiapp/bahi-backend/internal/models"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

// NotificationService is the repository for in-app notifications.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

type CreateNotificationRequest struct {
	UserID     *uint  `json:"user" validate:"required"`
	BusinessID *uint  `json:"business"`
	Title      string `json:"title" validate:"required,max=100"`
	Message    string `json:"message" validate:"required"`
	Opened     *bool  `json:"opened"`
}

type UpdateNotificationRequest struct {
	UserID     *uint   `json:"user"`
	BusinessID *uint   `json:"business"`
	Title      *string `json:"title" validate:"omitempty,max=100"`
	Message    *string `json:"message"`
	Opened     *bool   `json:"opened"`
}

func (s *NotificationService) checkRefs(userID, businessID *uint) (utils.FieldErrors, error) {
	fieldErrs := make(utils.FieldErrors)

	if userID != nil {
		ok, err := pkExists(s.db, &models.User{}, *userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs.Add("user", invalidPKMessage(*userID))
		}
	}
	if businessID != nil {
		ok, err := pkExists(s.db, &models.Business{}, *businessID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs.Add("business", invalidPKMessage(*businessID))
		}
	}

	return fieldErrs, nil
}

func (s *NotificationService) List() ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Order("id").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) Get(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &notification, nil
}

func (s *NotificationService) Create(req *CreateNotificationRequest) (*models.Notification, error) {
	fieldErrs, err := s.checkRefs(req.UserID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	notification := models.Notification{
		UserID:     *req.UserID,
		BusinessID: req.BusinessID,
		Title:      req.Title,
		Message:    req.Message,
	}
	if req.Opened != nil {
		notification.Opened = *req.Opened
	}

	if err := s.db.Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return &notification, nil
}

func (s *NotificationService) Update(id uint, req *UpdateNotificationRequest) (*models.Notification, error) {
	notification, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fieldErrs, err := s.checkRefs(req.UserID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if req.UserID != nil {
		notification.UserID = *req.UserID
	}
	if req.BusinessID != nil {
		notification.BusinessID = req.BusinessID
	}
	if req.Title != nil {
		notification.Title = *req.Title
	}
	if req.Message != nil {
		notification.Message = *req.Message
	}
	if req.Opened != nil {
		notification.Opened = *req.Opened
	}

	if err := s.db.Omit(clause.Associations).Save(notification).Error; err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return notification, nil
}

func (s *NotificationService) Delete(id uint) error {
	notification, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(notification).Error; err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
