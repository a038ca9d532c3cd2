// internal/handlers/admin_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListLogs(c *gin.Context) {
	logs, err := h.admin.ListLogs()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.AdminActivityLogs(logs))
}

func (h *AdminHandler) GetLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log, err := h.admin.GetLog(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.AdminActivityLog(log))
}

func (h *AdminHandler) CreateLog(c *gin.Context) {
	var req services.CreateActivityLogRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	log, err := h.admin.CreateLog(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.AdminActivityLog(log))
}

func (h *AdminHandler) DeleteLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteLog(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *AdminHandler) ListRoles(c *gin.Context) {
	roles, err := h.admin.ListRoles()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.AdminRoles(roles))
}

func (h *AdminHandler) GetRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	role, err := h.admin.GetRole(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.AdminRole(role))
}

func (h *AdminHandler) CreateRole(c *gin.Context) {
	var req services.CreateAdminRoleRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	role, err := h.admin.CreateRole(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.AdminRole(role))
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateAdminRoleRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	role, err := h.admin.UpdateRole(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.AdminRole(role))
}

func (h *AdminHandler) DeleteRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteRole(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
