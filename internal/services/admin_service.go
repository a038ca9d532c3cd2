// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bahiapp/bahi-backend/internal/models"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

// AdminService is the repository for the admin panel: activity logs and
// staff roles. Logs are append-only, so they have no update path.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Activity logs

type CreateActivityLogRequest struct {
	UserID  *uint   `json:"user" validate:"required"`
	Action  string  `json:"action" validate:"required,max=100"`
	Details *string `json:"details"`
}

func (s *AdminService) ListLogs() ([]models.AdminActivityLog, error) {
	var logs []models.AdminActivityLog
	if err := s.db.Order("id").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	return logs, nil
}

func (s *AdminService) GetLog(id uint) (*models.AdminActivityLog, error) {
	var log models.AdminActivityLog
	if err := s.db.First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get activity log: %w", err)
	}
	return &log, nil
}

func (s *AdminService) CreateLog(req *CreateActivityLogRequest) (*models.AdminActivityLog, error) {
	ok, err := pkExists(s.db, &models.User{}, *req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fieldErrs := make(utils.FieldErrors)
		fieldErrs.Add("user", invalidPKMessage(*req.UserID))
		return nil, fieldErrs
	}

	log := models.AdminActivityLog{
		UserID:  *req.UserID,
		Action:  req.Action,
		Details: req.Details,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, fmt.Errorf("create activity log: %w", err)
	}
	return &log, nil
}

func (s *AdminService) DeleteLog(id uint) error {
	log, err := s.GetLog(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(log).Error; err != nil {
		return fmt.Errorf("delete activity log: %w", err)
	}
	return nil
}

// Roles

type CreateAdminRoleRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Permissions string `json:"permissions" validate:"required"`
	Users       []uint `json:"users"`
}

type UpdateAdminRoleRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=50"`
	Permissions *string `json:"permissions"`
	Users       *[]uint `json:"users"`
}

func (s *AdminService) resolveRoleUsers(ids []uint) ([]models.User, utils.FieldErrors, error) {
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		ok, err := pkExists(s.db, &models.User{}, id)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			fieldErrs := make(utils.FieldErrors)
			fieldErrs.Add("users", invalidPKMessage(id))
			return nil, fieldErrs, nil
		}
		users = append(users, models.User{BaseModel: models.BaseModel{ID: id}})
	}
	return users, nil, nil
}

func (s *AdminService) ListRoles() ([]models.AdminRole, error) {
	var roles []models.AdminRole
	if err := s.db.Preload("Users").Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *AdminService) GetRole(id uint) (*models.AdminRole, error) {
	var role models.AdminRole
	if err := s.db.Preload("Users").First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

func (s *AdminService) CreateRole(req *CreateAdminRoleRequest) (*models.AdminRole, error) {
	users, fieldErrs, err := s.resolveRoleUsers(req.Users)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	role := models.AdminRole{
		Name:        req.Name,
		Permissions: req.Permissions,
	}
	if err := s.db.Omit(clause.Associations).Create(&role).Error; err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	if len(users) > 0 {
		if err := s.db.Model(&role).Association("Users").Replace(users); err != nil {
			return nil, fmt.Errorf("assign role users: %w", err)
		}
	}
	return s.GetRole(role.ID)
}

func (s *AdminService) UpdateRole(id uint, req *UpdateAdminRoleRequest) (*models.AdminRole, error) {
	role, err := s.GetRole(id)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if req.Users != nil {
		resolved, fieldErrs, err := s.resolveRoleUsers(*req.Users)
		if err != nil {
			return nil, err
		}
		if len(fieldErrs) > 0 {
			return nil, fieldErrs
		}
		users = resolved
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Permissions != nil {
		role.Permissions = *req.Permissions
	}

	if err := s.db.Omit(clause.Associations).Save(role).Error; err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	// Membership is replaced wholesale when the key is present.
	if req.Users != nil {
		if err := s.db.Model(role).Association("Users").Replace(users); err != nil {
			return nil, fmt.Errorf("replace role users: %w", err)
		}
	}

	return s.GetRole(id)
}

func (s *AdminService) DeleteRole(id uint) error {
	role, err := s.GetRole(id)
	if err != nil {
		return err
	}
	if err := s.db.Select(clause.Associations).Delete(role).Error; err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
