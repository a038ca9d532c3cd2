// internal/services/content_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bahiapp/bahi-backend/internal/models"
)

// ContentService is the repository for promotional banners and tutorial
// videos shown inside the app.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// Banners

type CreateBannerRequest struct {
	Title    string `json:"title" validate:"required,max=100"`
	Image    string `json:"image" validate:"required,max=255"`
	IsActive *bool  `json:"is_active"`
}

type UpdateBannerRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=100"`
	Image    *string `json:"image" validate:"omitempty,max=255"`
	IsActive *bool   `json:"is_active"`
}

func (s *ContentService) ListBanners() ([]models.Banner, error) {
	var banners []models.Banner
	if err := s.db.Order("id").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

func (s *ContentService) GetBanner(id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &banner, nil
}

func (s *ContentService) CreateBanner(req *CreateBannerRequest) (*models.Banner, error) {
	banner := models.Banner{
		Title:    req.Title,
		Image:    req.Image,
		IsActive: true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if err := s.db.Create(&banner).Error; err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	return &banner, nil
}

func (s *ContentService) UpdateBanner(id uint, req *UpdateBannerRequest) (*models.Banner, error) {
	banner, err := s.GetBanner(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Image != nil {
		banner.Image = *req.Image
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := s.db.Save(banner).Error; err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}
	return banner, nil
}

func (s *ContentService) DeleteBanner(id uint) error {
	banner, err := s.GetBanner(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(banner).Error; err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}

// Tutorials

type CreateTutorialRequest struct {
	Title    string          `json:"title" validate:"required,max=100"`
	VideoURL string          `json:"video_url" validate:"required,url,max=200"`
	Language models.Language `json:"language" validate:"required,oneof=en hi mr"`
}

type UpdateTutorialRequest struct {
	Title    *string          `json:"title" validate:"omitempty,max=100"`
	VideoURL *string          `json:"video_url" validate:"omitempty,url,max=200"`
	Language *models.Language `json:"language" validate:"omitempty,oneof=en hi mr"`
}

func (s *ContentService) ListTutorials() ([]models.Tutorial, error) {
	var tutorials []models.Tutorial
	if err := s.db.Order("id").Find(&tutorials).Error; err != nil {
		return nil, fmt.Errorf("list tutorials: %w", err)
	}
	return tutorials, nil
}

func (s *ContentService) GetTutorial(id uint) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	if err := s.db.First(&tutorial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tutorial: %w", err)
	}
	return &tutorial, nil
}

func (s *ContentService) CreateTutorial(req *CreateTutorialRequest) (*models.Tutorial, error) {
	tutorial := models.Tutorial{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Language: req.Language,
	}
	if err := s.db.Create(&tutorial).Error; err != nil {
		return nil, fmt.Errorf("create tutorial: %w", err)
	}
	return &tutorial, nil
}

func (s *ContentService) UpdateTutorial(id uint, req *UpdateTutorialRequest) (*models.Tutorial, error) {
	tutorial, err := s.GetTutorial(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		tutorial.Title = *req.Title
	}
	if req.VideoURL != nil {
		tutorial.VideoURL = *req.VideoURL
	}
	if req.Language != nil {
		tutorial.Language = *req.Language
	}

	if err := s.db.Save(tutorial).Error; err != nil {
		return nil, fmt.Errorf("update tutorial: %w", err)
	}
	return tutorial, nil
}

func (s *ContentService) DeleteTutorial(id uint) error {
	tutorial, err := s.GetTutorial(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(tutorial).Error; err != nil {
		return fmt.Errorf("delete tutorial: %w", err)
	}
	return nil
}
