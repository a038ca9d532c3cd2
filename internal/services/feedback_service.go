// internal/services/feedback_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bahiapp/bahi-backend/internal/models"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

// FeedbackService is the repository for user feedback tickets.
type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

type CreateTicketRequest struct {
	UserID       *uint               `json:"user" validate:"required"`
	Tag          models.TicketTag    `json:"tag" validate:"required,oneof=bug suggestion payment"`
	Message      string              `json:"message" validate:"required"`
	Status       models.TicketStatus `json:"status" validate:"omitempty,oneof=open resolved"`
	AssignedToID *uint               `json:"assigned_to"`
}

type UpdateTicketRequest struct {
	UserID       *uint                `json:"user"`
	Tag          *models.TicketTag    `json:"tag" validate:"omitempty,oneof=bug suggestion payment"`
	Message      *string              `json:"message"`
	Status       *models.TicketStatus `json:"status" validate:"omitempty,oneof=open resolved"`
	AssignedToID *uint                `json:"assigned_to"`
}

func (s *FeedbackService) checkRefs(userID, assignedToID *uint) (utils.FieldErrors, error) {
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
	if assignedToID != nil {
		ok, err := pkExists(s.db, &models.User{}, *assignedToID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs.Add("assigned_to", invalidPKMessage(*assignedToID))
		}
	}

	return fieldErrs, nil
}

func (s *FeedbackService) List() ([]models.FeedbackTicket, error) {
	var tickets []models.FeedbackTicket
	if err := s.db.Order("id").Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *FeedbackService) Get(id uint) (*models.FeedbackTicket, error) {
	var ticket models.FeedbackTicket
	if err := s.db.First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &ticket, nil
}

func (s *FeedbackService) Create(req *CreateTicketRequest) (*models.FeedbackTicket, error) {
	fieldErrs, err := s.checkRefs(req.UserID, req.AssignedToID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	ticket := models.FeedbackTicket{
		UserID:       *req.UserID,
		Tag:          req.Tag,
		Message:      req.Message,
		Status:       models.TicketStatusOpen,
		AssignedToID: req.AssignedToID,
	}
	if req.Status != "" {
		ticket.Status = req.Status
	}

	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &ticket, nil
}

func (s *FeedbackService) Update(id uint, req *UpdateTicketRequest) (*models.FeedbackTicket, error) {
	ticket, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fieldErrs, err := s.checkRefs(req.UserID, req.AssignedToID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if req.UserID != nil {
		ticket.UserID = *req.UserID
	}
	if req.Tag != nil {
		ticket.Tag = *req.Tag
	}
	if req.Message != nil {
		ticket.Message = *req.Message
	}
	if req.Status != nil {
		ticket.Status = *req.Status
	}
	if req.AssignedToID != nil {
		ticket.AssignedToID = req.AssignedToID
	}

	if err := s.db.Omit(clause.Associations).Save(ticket).Error; err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return ticket, nil
}

func (s *FeedbackService) Delete(id uint) error {
	ticket, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(ticket).Error; err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
