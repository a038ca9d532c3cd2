// internal/services/subscription_service.go
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

// SubscriptionService is the repository for plans, user subscriptions and
// discount coupons.
type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// Plans

type CreatePlanRequest struct {
	Name           string           `json:"name" validate:"required,max=50"`
	Price          *decimal.Decimal `json:"price" validate:"required"`
	DurationMonths *int             `json:"duration_months" validate:"required"`
	IsActive       *bool            `json:"is_active"`
}

type UpdatePlanRequest struct {
	Name           *string          `json:"name" validate:"omitempty,max=50"`
	Price          *decimal.Decimal `json:"price"`
	DurationMonths *int             `json:"duration_months"`
	IsActive       *bool            `json:"is_active"`
}

func (s *SubscriptionService) ListPlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Order("id").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *SubscriptionService) GetPlan(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &plan, nil
}

func (s *SubscriptionService) CreatePlan(req *CreatePlanRequest) (*models.Plan, error) {
	plan := models.Plan{
		Name:           req.Name,
		Price:          *req.Price,
		DurationMonths: *req.DurationMonths,
		IsActive:       true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &plan, nil
}

func (s *SubscriptionService) UpdatePlan(id uint, req *UpdatePlanRequest) (*models.Plan, error) {
	plan, err := s.GetPlan(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DurationMonths != nil {
		plan.DurationMonths = *req.DurationMonths
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return plan, nil
}

func (s *SubscriptionService) DeletePlan(id uint) error {
	plan, err := s.GetPlan(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(plan).Error; err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// Subscriptions

type CreateSubscriptionRequest struct {
	UserID    *uint       `json:"user" validate:"required"`
	PlanID    *uint       `json:"plan" validate:"required"`
	StartDate models.Date `json:"start_date" validate:"required"`
	EndDate   models.Date `json:"end_date" validate:"required"`
	IsActive  *bool       `json:"is_active"`
	AutoRenew *bool       `json:"auto_renew"`
}

type UpdateSubscriptionRequest struct {
	UserID    *uint        `json:"user"`
	PlanID    *uint        `json:"plan"`
	StartDate *models.Date `json:"start_date"`
	EndDate   *models.Date `json:"end_date"`
	IsActive  *bool        `json:"is_active"`
	AutoRenew *bool        `json:"auto_renew"`
}

func (s *SubscriptionService) checkSubscriptionRefs(userID, planID *uint) (utils.FieldErrors, error) {
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
	if planID != nil {
		ok, err := pkExists(s.db, &models.Plan{}, *planID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fieldErrs.Add("plan", invalidPKMessage(*planID))
		}
	}

	return fieldErrs, nil
}

func (s *SubscriptionService) ListSubscriptions() ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := s.db.Order("id").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

func (s *SubscriptionService) GetSubscription(id uint) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &sub, nil
}

func (s *SubscriptionService) CreateSubscription(req *CreateSubscriptionRequest) (*models.Subscription, error) {
	fieldErrs, err := s.checkSubscriptionRefs(req.UserID, req.PlanID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	sub := models.Subscription{
		UserID:    *req.UserID,
		PlanID:    *req.PlanID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if req.AutoRenew != nil {
		sub.AutoRenew = *req.AutoRenew
	}

	if err := s.db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &sub, nil
}

func (s *SubscriptionService) UpdateSubscription(id uint, req *UpdateSubscriptionRequest) (*models.Subscription, error) {
	sub, err := s.GetSubscription(id)
	if err != nil {
		return nil, err
	}

	fieldErrs, err := s.checkSubscriptionRefs(req.UserID, req.PlanID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if req.UserID != nil {
		sub.UserID = *req.UserID
	}
	if req.PlanID != nil {
		sub.PlanID = *req.PlanID
	}
	if req.StartDate != nil {
		sub.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		sub.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if req.AutoRenew != nil {
		sub.AutoRenew = *req.AutoRenew
	}

	if err := s.db.Omit(clause.Associations).Save(sub).Error; err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return sub, nil
}

func (s *SubscriptionService) DeleteSubscription(id uint) error {
	sub, err := s.GetSubscription(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(sub).Error; err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

// Coupons

type CreateCouponRequest struct {
	Code            string      `json:"code" validate:"required,max=20"`
	DiscountPercent *int        `json:"discount_percent" validate:"required,gte=0,lte=100"`
	ValidFrom       models.Date `json:"valid_from" validate:"required"`
	ValidTo         models.Date `json:"valid_to" validate:"required"`
	IsActive        *bool       `json:"is_active"`
}

type UpdateCouponRequest struct {
	Code            *string      `json:"code" validate:"omitempty,max=20"`
	DiscountPercent *int         `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	ValidFrom       *models.Date `json:"valid_from"`
	ValidTo         *models.Date `json:"valid_to"`
	IsActive        *bool        `json:"is_active"`
}

func (s *SubscriptionService) couponCodeTaken(code string, excludeID uint) (bool, error) {
	var count int64
	q := s.db.Model(&models.Coupon{}).Where("code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check coupon code: %w", err)
	}
	return count > 0, nil
}

func (s *SubscriptionService) ListCoupons() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := s.db.Order("id").Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	return coupons, nil
}

func (s *SubscriptionService) GetCoupon(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := s.db.First(&coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	return &coupon, nil
}

func (s *SubscriptionService) CreateCoupon(req *CreateCouponRequest) (*models.Coupon, error) {
	taken, err := s.couponCodeTaken(req.Code, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		fieldErrs := make(utils.FieldErrors)
		fieldErrs.Add("code", uniqueMessage())
		return nil, fieldErrs
	}

	coupon := models.Coupon{
		Code:            req.Code,
		DiscountPercent: *req.DiscountPercent,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
		IsActive:        true,
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	if err := s.db.Create(&coupon).Error; err != nil {
		return nil, fmt.Errorf("create coupon: %w", err)
	}
	return &coupon, nil
}

func (s *SubscriptionService) UpdateCoupon(id uint, req *UpdateCouponRequest) (*models.Coupon, error) {
	coupon, err := s.GetCoupon(id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		taken, err := s.couponCodeTaken(*req.Code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			fieldErrs := make(utils.FieldErrors)
			fieldErrs.Add("code", uniqueMessage())
			return nil, fieldErrs
		}
		coupon.Code = *req.Code
	}

	if req.DiscountPercent != nil {
		coupon.DiscountPercent = *req.DiscountPercent
	}
	if req.ValidFrom != nil {
		coupon.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		coupon.ValidTo = *req.ValidTo
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	if err := s.db.Save(coupon).Error; err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}
	return coupon, nil
}

func (s *SubscriptionService) DeleteCoupon(id uint) error {
	coupon, err := s.GetCoupon(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(coupon).Error; err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}
