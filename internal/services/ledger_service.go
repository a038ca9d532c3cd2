// internal/services/ledger_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bahiapp/bahi-backend/internal/models"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

// LedgerService is the repository for income/expense entries and their
// categories.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// Categories

type CreateCategoryRequest struct {
	Name       string           `json:"name" validate:"required,max=50"`
	Type       models.EntryType `json:"type" validate:"required,oneof=income expense"`
	BusinessID *uint            `json:"business" validate:"required"`
	Default    *bool            `json:"default"`
}

type UpdateCategoryRequest struct {
	Name       *string           `json:"name" validate:"omitempty,max=50"`
	Type       *models.EntryType `json:"type" validate:"omitempty,oneof=income expense"`
	BusinessID *uint             `json:"business"`
	Default    *bool             `json:"default"`
}

func (s *LedgerService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *LedgerService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

func (s *LedgerService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	ok, err := pkExists(s.db, &models.Business{}, *req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs := make(utils.FieldErrors)
		fieldErrs.Add("business", invalidPKMessage(*req.BusinessID))
		return nil, fieldErrs
	}

	category := models.Category{
		Name:       req.Name,
		Type:       req.Type,
		BusinessID: *req.BusinessID,
	}
	if req.Default != nil {
		category.Default = *req.Default
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

func (s *LedgerService) UpdateCategory(id uint, req *UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if req.BusinessID != nil {
		ok, err := pkExists(s.db, &models.Business{}, *req.BusinessID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs := make(utils.FieldErrors)
			fieldErrs.Add("business", invalidPKMessage(*req.BusinessID))
			return nil, fieldErrs
		}
		category.BusinessID = *req.BusinessID
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		category.Type = *req.Type
	}
	if req.Default != nil {
		category.Default = *req.Default
	}

	if err := s.db.Omit(clause.Associations).Save(category).Error; err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *LedgerService) DeleteCategory(id uint) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(category).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Entries

type CreateEntryRequest struct {
	UserID      *uint             `json:"user" validate:"required"`
	BusinessID  *uint             `json:"business" validate:"required"`
	Amount      *decimal.Decimal  `json:"amount" validate:"required"`
	Type        models.EntryType  `json:"type" validate:"required,oneof=income expense"`
	CategoryID  *uint             `json:"category_id"`
	Date        models.Date       `json:"date" validate:"required"`
	Time        *models.TimeOfDay `json:"time"`
	PaymentMode *string           `json:"payment_mode" validate:"omitempty,max=20"`
	Notes       *string           `json:"notes"`
	VoiceEntry  *bool             `json:"voice_entry"`
}

type UpdateEntryRequest struct {
	UserID      *uint             `json:"user"`
	BusinessID  *uint             `json:"business"`
	Amount      *decimal.Decimal  `json:"amount"`
	Type        *models.EntryType `json:"type" validate:"omitempty,oneof=income expense"`
	CategoryID  *uint             `json:"category_id"`
	Date        *models.Date      `json:"date"`
	Time        *models.TimeOfDay `json:"time"`
	PaymentMode *string           `json:"payment_mode" validate:"omitempty,max=20"`
	Notes       *string           `json:"notes"`
	VoiceEntry  *bool             `json:"voice_entry"`
}

func (s *LedgerService) ListEntries() ([]models.IncomeExpense, error) {
	var entries []models.IncomeExpense
	if err := s.db.Preload("Category").Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *LedgerService) GetEntry(id uint) (*models.IncomeExpense, error) {
	var entry models.IncomeExpense
	if err := s.db.Preload("Category").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &entry, nil
}

func (s *LedgerService) checkEntryRefs(userID, businessID, categoryID *uint) (utils.FieldErrors, error) {
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
	if categoryID != nil {
		ok, err := pkExists(s.db, &models.Category{}, *categoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs.Add("category_id", invalidPKMessage(*categoryID))
		}
	}

	return fieldErrs, nil
}

func (s *LedgerService) CreateEntry(req *CreateEntryRequest) (*models.IncomeExpense, error) {
	fieldErrs, err := s.checkEntryRefs(req.UserID, req.BusinessID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	entry := models.IncomeExpense{
		UserID:      *req.UserID,
		BusinessID:  *req.BusinessID,
		Amount:      *req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Time:        req.Time,
		PaymentMode: req.PaymentMode,
		Notes:       req.Notes,
	}
	if req.VoiceEntry != nil {
		entry.VoiceEntry = *req.VoiceEntry
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return s.GetEntry(entry.ID)
}

func (s *LedgerService) UpdateEntry(id uint, req *UpdateEntryRequest) (*models.IncomeExpense, error) {
	entry, err := s.GetEntry(id)
	if err != nil {
		return nil, err
	}

	fieldErrs, err := s.checkEntryRefs(req.UserID, req.BusinessID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if req.UserID != nil {
		entry.UserID = *req.UserID
	}
	if req.BusinessID != nil {
		entry.BusinessID = *req.BusinessID
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Type != nil {
		entry.Type = *req.Type
	}
	if req.CategoryID != nil {
		entry.CategoryID = req.CategoryID
		entry.Category = nil
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Time != nil {
		entry.Time = req.Time
	}
	if req.PaymentMode != nil {
		entry.PaymentMode = req.PaymentMode
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}
	if req.VoiceEntry != nil {
		entry.VoiceEntry = *req.VoiceEntry
	}

	if err := s.db.Omit(clause.Associations).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return s.GetEntry(id)
}

func (s *LedgerService) DeleteEntry(id uint) error {
	entry, err := s.GetEntry(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
