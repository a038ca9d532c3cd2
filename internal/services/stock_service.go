// internal/services/stock_service.go
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

// StockService is the repository for stock items and their in/out
// transactions.
type StockService struct {
	db *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// Items

type CreateStockItemRequest struct {
	Name         string           `json:"name" validate:"required,max=100"`
	Unit         string           `json:"unit" validate:"required,max=20"`
	OpeningStock *decimal.Decimal `json:"opening_stock" validate:"required"`
	ClosingStock *decimal.Decimal `json:"closing_stock"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit" validate:"required"`
	BusinessID   *uint            `json:"business" validate:"required"`
	Category     *string          `json:"category" validate:"omitempty,max=50"`
	Notes        *string          `json:"notes"`
}

type UpdateStockItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,max=100"`
	Unit         *string          `json:"unit" validate:"omitempty,max=20"`
	OpeningStock *decimal.Decimal `json:"opening_stock"`
	ClosingStock *decimal.Decimal `json:"closing_stock"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
	BusinessID   *uint            `json:"business"`
	Category     *string          `json:"category" validate:"omitempty,max=50"`
	Notes        *string          `json:"notes"`
}

func (s *StockService) ListItems() ([]models.StockItem, error) {
	var items []models.StockItem
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	return items, nil
}

func (s *StockService) GetItem(id uint) (*models.StockItem, error) {
	var item models.StockItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &item, nil
}

func (s *StockService) CreateItem(req *CreateStockItemRequest) (*models.StockItem, error) {
	ok, err := pkExists(s.db, &models.Business{}, *req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs := make(utils.FieldErrors)
		fieldErrs.Add("business", invalidPKMessage(*req.BusinessID))
		return nil, fieldErrs
	}

	item := models.StockItem{
		Name:         req.Name,
		Unit:         req.Unit,
		OpeningStock: *req.OpeningStock,
		PricePerUnit: *req.PricePerUnit,
		BusinessID:   *req.BusinessID,
		Category:     req.Category,
		Notes:        req.Notes,
	}
	// Closing stock starts at the opening level unless given explicitly.
	if req.ClosingStock != nil {
		item.ClosingStock = *req.ClosingStock
	} else {
		item.ClosingStock = *req.OpeningStock
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create stock item: %w", err)
	}
	return &item, nil
}

func (s *StockService) UpdateItem(id uint, req *UpdateStockItemRequest) (*models.StockItem, error) {
	item, err := s.GetItem(id)
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
		item.BusinessID = *req.BusinessID
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.OpeningStock != nil {
		item.OpeningStock = *req.OpeningStock
	}
	if req.ClosingStock != nil {
		item.ClosingStock = *req.ClosingStock
	}
	if req.PricePerUnit != nil {
		item.PricePerUnit = *req.PricePerUnit
	}
	if req.Category != nil {
		item.Category = req.Category
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}

	if err := s.db.Omit(clause.Associations).Save(item).Error; err != nil {
		return nil, fmt.Errorf("update stock item: %w", err)
	}
	return item, nil
}

func (s *StockService) DeleteItem(id uint) error {
	item, err := s.GetItem(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

// Transactions

type CreateStockTransactionRequest struct {
	StockItemID     *uint                       `json:"stock_item_id" validate:"required"`
	TransactionType models.StockTransactionType `json:"transaction_type" validate:"required,oneof=in out"`
	Quantity        *decimal.Decimal            `json:"quantity" validate:"required"`
	Date            models.Date                 `json:"date" validate:"required"`
	Notes           *string                     `json:"notes"`
}

type UpdateStockTransactionRequest struct {
	StockItemID     *uint                        `json:"stock_item_id"`
	TransactionType *models.StockTransactionType `json:"transaction_type" validate:"omitempty,oneof=in out"`
	Quantity        *decimal.Decimal             `json:"quantity"`
	Date            *models.Date                 `json:"date"`
	Notes           *string                      `json:"notes"`
}

func (s *StockService) ListTransactions() ([]models.StockTransaction, error) {
	var txns []models.StockTransaction
	if err := s.db.Preload("StockItem").Order("id").Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	return txns, nil
}

func (s *StockService) GetTransaction(id uint) (*models.StockTransaction, error) {
	var txn models.StockTransaction
	if err := s.db.Preload("StockItem").First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return &txn, nil
}

func (s *StockService) CreateTransaction(req *CreateStockTransactionRequest) (*models.StockTransaction, error) {
	ok, err := pkExists(s.db, &models.StockItem{}, *req.StockItemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs := make(utils.FieldErrors)
		fieldErrs.Add("stock_item_id", invalidPKMessage(*req.StockItemID))
		return nil, fieldErrs
	}

	txn := models.StockTransaction{
		StockItemID:     *req.StockItemID,
		TransactionType: req.TransactionType,
		Quantity:        *req.Quantity,
		Date:            req.Date,
		Notes:           req.Notes,
	}

	if err := s.db.Create(&txn).Error; err != nil {
		return nil, fmt.Errorf("create stock transaction: %w", err)
	}
	return s.GetTransaction(txn.ID)
}

func (s *StockService) UpdateTransaction(id uint, req *UpdateStockTransactionRequest) (*models.StockTransaction, error) {
	txn, err := s.GetTransaction(id)
	if err != nil {
		return nil, err
	}

	if req.StockItemID != nil {
		ok, err := pkExists(s.db, &models.StockItem{}, *req.StockItemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs := make(utils.FieldErrors)
			fieldErrs.Add("stock_item_id", invalidPKMessage(*req.StockItemID))
			return nil, fieldErrs
		}
		txn.StockItemID = *req.StockItemID
		txn.StockItem = nil
	}

	if req.TransactionType != nil {
		txn.TransactionType = *req.TransactionType
	}
	if req.Quantity != nil {
		txn.Quantity = *req.Quantity
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Notes != nil {
		txn.Notes = req.Notes
	}

	if err := s.db.Omit(clause.Associations).Save(txn).Error; err != nil {
		return nil, fmt.Errorf("update stock transaction: %w", err)
	}
	return s.GetTransaction(id)
}

func (s *StockService) DeleteTransaction(id uint) error {
	txn, err := s.GetTransaction(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(txn).Error; err != nil {
		return fmt.Errorf("delete stock transaction: %w", err)
	}
	return nil
}
