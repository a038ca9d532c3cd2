// internal/services/report_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bahiapp/bahi-backend/internal/models"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

// ReportService is the repository for report export records. Exports are
// immutable once created, so there is no update path.
type ReportService struct {
	db      *gorm.DB
	storage *StorageService
}

func NewReportService(db *gorm.DB, storage *StorageService) *ReportService {
	return &ReportService{db: db, storage: storage}
}

type CreateReportExportRequest struct {
	UserID     *uint  `json:"user" validate:"required"`
	BusinessID *uint  `json:"business" validate:"required"`
	ReportType string `json:"report_type" validate:"required,max=50"`
	FilePath   string `json:"file_path" validate:"required,max=255"`
}

func (s *ReportService) ListExports() ([]models.ReportExport, error) {
	var exports []models.ReportExport
	if err := s.db.Order("id").Find(&exports).Error; err != nil {
		return nil, fmt.Errorf("list report exports: %w", err)
	}
	return exports, nil
}

func (s *ReportService) GetExport(id uint) (*models.ReportExport, error) {
	var export models.ReportExport
	if err := s.db.First(&export, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get report export: %w", err)
	}
	return &export, nil
}

func (s *ReportService) CreateExport(req *CreateReportExportRequest) (*models.ReportExport, error) {
	fieldErrs := make(utils.FieldErrors)

	ok, err := pkExists(s.db, &models.User{}, *req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs.Add("user", invalidPKMessage(*req.UserID))
	}

	ok, err = pkExists(s.db, &models.Business{}, *req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs.Add("business", invalidPKMessage(*req.BusinessID))
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	export := models.ReportExport{
		UserID:     *req.UserID,
		BusinessID: *req.BusinessID,
		ReportType: req.ReportType,
		FilePath:   req.FilePath,
	}
	if err := s.db.Create(&export).Error; err != nil {
		return nil, fmt.Errorf("create report export: %w", err)
	}
	return &export, nil
}

// DeleteExport removes the record and then tries to drop the exported
// file from storage. A storage failure only logs; the record is gone
// either way.
func (s *ReportService) DeleteExport(id uint) error {
	export, err := s.GetExport(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(export).Error; err != nil {
		return fmt.Errorf("delete report export: %w", err)
	}

	if s.storage != nil && export.FilePath != "" {
		if err := s.storage.DeleteFile(export.FilePath); err != nil {
			logrus.WithError(err).WithField("key", export.FilePath).
				Warn("failed to delete export file from storage")
		}
	}
	return nil
}
