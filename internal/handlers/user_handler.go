// internal/handlers/user_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Users(users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.users.GetUser(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.User(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	user, err := h.users.CreateUser(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.User(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateUserRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	user, err := h.users.UpdateUser(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.User(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.users.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *UserHandler) ListBusinesses(c *gin.Context) {
	businesses, err := h.users.ListBusinesses()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Businesses(businesses))
}

func (h *UserHandler) GetBusiness(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	business, err := h.users.GetBusiness(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Business(business))
}

func (h *UserHandler) CreateBusiness(c *gin.Context) {
	var req services.CreateBusinessRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	business, err := h.users.CreateBusiness(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Business(business))
}

func (h *UserHandler) UpdateBusiness(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateBusinessRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	business, err := h.users.UpdateBusiness(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Business(business))
}

func (h *UserHandler) DeleteBusiness(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.users.DeleteBusiness(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
