// internal/services/udhari_service.go
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

// UdhariService is the repository for customers and their credit-ledger
// entries.
type UdhariService struct {
	db *gorm.DB
}

func NewUdhariService(db *gorm.DB) *UdhariService {
	return &UdhariService{db: db}
}

// Customers

type CreateCustomerRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=15"`
	BusinessID *uint   `json:"business" validate:"required"`
}

type UpdateCustomerRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=15"`
	BusinessID *uint   `json:"business"`
}

func (s *UdhariService) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *UdhariService) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &customer, nil
}

func (s *UdhariService) CreateCustomer(req *CreateCustomerRequest) (*models.Customer, error) {
	ok, err := pkExists(s.db, &models.Business{}, *req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs := make(utils.FieldErrors)
		fieldErrs.Add("business", invalidPKMessage(*req.BusinessID))
		return nil, fieldErrs
	}

	customer := models.Customer{
		Name:       req.Name,
		Phone:      req.Phone,
		BusinessID: *req.BusinessID,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &customer, nil
}

func (s *UdhariService) UpdateCustomer(id uint, req *UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomer(id)
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
		customer.BusinessID = *req.BusinessID
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}

	if err := s.db.Omit(clause.Associations).Save(customer).Error; err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

func (s *UdhariService) DeleteCustomer(id uint) error {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(customer).Error; err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// Udhari entries

type CreateUdhariRequest struct {
	CustomerID *uint               `json:"customer_id" validate:"required"`
	Amount     *decimal.Decimal    `json:"amount" validate:"required"`
	Given      *bool               `json:"given" validate:"required"`
	Date       models.Date         `json:"date" validate:"required"`
	DueDate    *models.Date        `json:"due_date"`
	Status     models.UdhariStatus `json:"status" validate:"omitempty,oneof=paid unpaid"`
	Notes      *string             `json:"notes"`
	Reminder   *bool               `json:"reminder"`
}

type UpdateUdhariRequest struct {
	CustomerID *uint                `json:"customer_id"`
	Amount     *decimal.Decimal     `json:"amount"`
	Given      *bool                `json:"given"`
	Date       *models.Date         `json:"date"`
	DueDate    *models.Date         `json:"due_date"`
	Status     *models.UdhariStatus `json:"status" validate:"omitempty,oneof=paid unpaid"`
	Notes      *string              `json:"notes"`
	Reminder   *bool                `json:"reminder"`
}

func (s *UdhariService) ListUdhari() ([]models.Udhari, error) {
	var entries []models.Udhari
	if err := s.db.Preload("Customer").Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list udhari: %w", err)
	}
	return entries, nil
}

func (s *UdhariService) GetUdhari(id uint) (*models.Udhari, error) {
	var entry models.Udhari
	if err := s.db.Preload("Customer").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get udhari: %w", err)
	}
	return &entry, nil
}

func (s *UdhariService) CreateUdhari(req *CreateUdhariRequest) (*models.Udhari, error) {
	ok, err := pkExists(s.db, &models.Customer{}, *req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs := make(utils.FieldErrors)
		fieldErrs.Add("customer_id", invalidPKMessage(*req.CustomerID))
		return nil, fieldErrs
	}

	entry := models.Udhari{
		CustomerID: *req.CustomerID,
		Amount:     *req.Amount,
		Given:      *req.Given,
		Date:       req.Date,
		DueDate:    req.DueDate,
		Status:     models.UdhariStatusUnpaid,
		Notes:      req.Notes,
	}
	if req.Status != "" {
		entry.Status = req.Status
	}
	if req.Reminder != nil {
		entry.Reminder = *req.Reminder
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create udhari: %w", err)
	}
	return s.GetUdhari(entry.ID)
}

func (s *UdhariService) UpdateUdhari(id uint, req *UpdateUdhariRequest) (*models.Udhari, error) {
	entry, err := s.GetUdhari(id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		ok, err := pkExists(s.db, &models.Customer{}, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs := make(utils.FieldErrors)
			fieldErrs.Add("customer_id", invalidPKMessage(*req.CustomerID))
			return nil, fieldErrs
		}
		entry.CustomerID = *req.CustomerID
		entry.Customer = nil
	}

	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Given != nil {
		entry.Given = *req.Given
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.DueDate != nil {
		entry.DueDate = req.DueDate
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}
	if req.Reminder != nil {
		entry.Reminder = *req.Reminder
	}

	if err := s.db.Omit(clause.Associations).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("update udhari: %w", err)
	}
	return s.GetUdhari(id)
}

func (s *UdhariService) DeleteUdhari(id uint) error {
	entry, err := s.GetUdhari(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return fmt.Errorf("delete udhari: %w", err)
	}
	return nil
}
