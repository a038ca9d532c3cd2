// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bahiapp/bahi-backend/internal/models"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

const referralCodeLength = 8

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserRequest struct {
	Username     string           `json:"username" validate:"required,max=150"`
	Password     string           `json:"password" validate:"required"`
	Email        *string          `json:"email" validate:"omitempty,email,max=255"`
	Phone        *string          `json:"phone" validate:"omitempty,max=15"`
	Language     *models.Language `json:"language" validate:"omitempty,oneof=en hi mr"`
	BusinessID   *uint            `json:"business_id"`
	IsPremium    *bool            `json:"is_premium"`
	ReferralCode *string          `json:"referral_code" validate:"omitempty,max=20"`
	ReferredBy   *string          `json:"referred_by" validate:"omitempty,max=20"`
	AppLocked    *bool            `json:"app_locked"`
	HealthScore  *int             `json:"health_score" validate:"omitempty,gte=0,lte=100"`
	Notes        *string          `json:"notes"`
	FirstName    *string          `json:"first_name" validate:"omitempty,max=150"`
	LastName     *string          `json:"last_name" validate:"omitempty,max=150"`
}

type UpdateUserRequest struct {
	Username    *string          `json:"username" validate:"omitempty,max=150"`
	Email       *string          `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string          `json:"phone" validate:"omitempty,max=15"`
	Language    *models.Language `json:"language" validate:"omitempty,oneof=en hi mr"`
	BusinessID  *uint            `json:"business_id"`
	IsPremium   *bool            `json:"is_premium"`
	ReferredBy  *string          `json:"referred_by" validate:"omitempty,max=20"`
	AppLocked   *bool            `json:"app_locked"`
	HealthScore *int             `json:"health_score" validate:"omitempty,gte=0,lte=100"`
	Notes       *string          `json:"notes"`
	FirstName   *string          `json:"first_name" validate:"omitempty,max=150"`
	LastName    *string          `json:"last_name" validate:"omitempty,max=150"`
	IsActive    *bool            `json:"is_active"`
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Preload("Business").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Business").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	fieldErrs := make(utils.FieldErrors)

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		fieldErrs.Add("username", uniqueMessage())
	}

	if req.Phone != nil {
		if err := s.db.Model(&models.User{}).Where("phone = ?", *req.Phone).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("check phone: %w", err)
		}
		if count > 0 {
			fieldErrs.Add("phone", uniqueMessage())
		}
	}

	if req.BusinessID != nil {
		ok, err := pkExists(s.db, &models.Business{}, *req.BusinessID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs.Add("business_id", invalidPKMessage(*req.BusinessID))
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	user := models.User{
		Username:     req.Username,
		Phone:        req.Phone,
		Language:     models.LanguageEnglish,
		BusinessID:   req.BusinessID,
		ReferralCode: req.ReferralCode,
		ReferredBy:   req.ReferredBy,
		HealthScore:  100,
		Notes:        req.Notes,
		IsActive:     true,
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Language != nil {
		user.Language = *req.Language
	}
	if req.IsPremium != nil {
		user.IsPremium = *req.IsPremium
	}
	if req.AppLocked != nil {
		user.AppLocked = *req.AppLocked
	}
	if req.HealthScore != nil {
		user.HealthScore = *req.HealthScore
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if user.ReferralCode == nil {
		code, err := utils.GenerateReferralCode(referralCodeLength)
		if err != nil {
			return nil, fmt.Errorf("generate referral code: %w", err)
		}
		user.ReferralCode = &code
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("User created")
	return s.GetUser(user.ID)
}

func (s *UserService) UpdateUser(id uint, req *UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	fieldErrs := make(utils.FieldErrors)

	var count int64
	if req.Username != nil && *req.Username != user.Username {
		if err := s.db.Model(&models.User{}).Where("username = ? AND id != ?", *req.Username, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if count > 0 {
			fieldErrs.Add("username", uniqueMessage())
		}
	}

	if req.Phone != nil {
		if err := s.db.Model(&models.User{}).Where("phone = ? AND id != ?", *req.Phone, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("check phone: %w", err)
		}
		if count > 0 {
			fieldErrs.Add("phone", uniqueMessage())
		}
	}

	if req.BusinessID != nil {
		ok, err := pkExists(s.db, &models.Business{}, *req.BusinessID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs.Add("business_id", invalidPKMessage(*req.BusinessID))
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Language != nil {
		user.Language = *req.Language
	}
	if req.BusinessID != nil {
		user.BusinessID = req.BusinessID
	}
	if req.IsPremium != nil {
		user.IsPremium = *req.IsPremium
	}
	if req.ReferredBy != nil {
		user.ReferredBy = req.ReferredBy
	}
	if req.AppLocked != nil {
		user.AppLocked = *req.AppLocked
	}
	if req.HealthScore != nil {
		user.HealthScore = *req.HealthScore
	}
	if req.Notes != nil {
		user.Notes = req.Notes
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.db.Omit(clause.Associations).Save(user).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetUser(id)
}

func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(user).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Businesses

type CreateBusinessRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Type    *string `json:"type" validate:"omitempty,max=50"`
	OwnerID *uint   `json:"owner" validate:"required"`
}

type UpdateBusinessRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	Type    *string `json:"type" validate:"omitempty,max=50"`
	OwnerID *uint   `json:"owner"`
}

// Every business starts with the same seed categories; they carry the
// default flag so clients can tell them apart from user-made ones.
var defaultCategories = []struct {
	Name string
	Type models.EntryType
}{
	{"Sales", models.EntryTypeIncome},
	{"Other Income", models.EntryTypeIncome},
	{"Purchases", models.EntryTypeExpense},
	{"Rent", models.EntryTypeExpense},
	{"Salaries", models.EntryTypeExpense},
	{"Other Expense", models.EntryTypeExpense},
}

func (s *UserService) ListBusinesses() ([]models.Business, error) {
	var businesses []models.Business
	if err := s.db.Order("id").Find(&businesses).Error; err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	return businesses, nil
}

func (s *UserService) GetBusiness(id uint) (*models.Business, error) {
	var business models.Business
	if err := s.db.First(&business, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &business, nil
}

func (s *UserService) CreateBusiness(req *CreateBusinessRequest) (*models.Business, error) {
	fieldErrs := make(utils.FieldErrors)

	ok, err := pkExists(s.db, &models.User{}, *req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs.Add("owner", invalidPKMessage(*req.OwnerID))
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	business := models.Business{
		Name:    req.Name,
		Type:    req.Type,
		OwnerID: *req.OwnerID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&business).Error; err != nil {
			return fmt.Errorf("create business: %w", err)
		}
		for _, seed := range defaultCategories {
			category := models.Category{
				Name:       seed.Name,
				Type:       seed.Type,
				BusinessID: business.ID,
				Default:    true,
			}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("seed category: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("business_id", business.ID).Info("Business created")
	return &business, nil
}

func (s *UserService) UpdateBusiness(id uint, req *UpdateBusinessRequest) (*models.Business, error) {
	business, err := s.GetBusiness(id)
	if err != nil {
		return nil, err
	}

	if req.OwnerID != nil {
		ok, err := pkExists(s.db, &models.User{}, *req.OwnerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs := make(utils.FieldErrors)
			fieldErrs.Add("owner", invalidPKMessage(*req.OwnerID))
			return nil, fieldErrs
		}
		business.OwnerID = *req.OwnerID
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Type != nil {
		business.Type = req.Type
	}

	if err := s.db.Omit(clause.Associations).Save(business).Error; err != nil {
		return nil, fmt.Errorf("update business: %w", err)
	}
	return business, nil
}

func (s *UserService) DeleteBusiness(id uint) error {
	business, err := s.GetBusiness(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(business).Error; err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}
