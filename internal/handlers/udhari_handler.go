// internal/handlers/udhari_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type UdhariHandler struct {
	udhari *services.UdhariService
}

func NewUdhariHandler(udhari *services.UdhariService) *UdhariHandler {
	return &UdhariHandler{udhari: udhari}
}

func (h *UdhariHandler) ListCustomers(c *gin.Context) {
	customers, err := h.udhari.ListCustomers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Customers(customers))
}

func (h *UdhariHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := h.udhari.GetCustomer(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Customer(customer))
}

func (h *UdhariHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	customer, err := h.udhari.CreateCustomer(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Customer(customer))
}

func (h *UdhariHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateCustomerRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	customer, err := h.udhari.UpdateCustomer(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Customer(customer))
}

func (h *UdhariHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.udhari.DeleteCustomer(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *UdhariHandler) ListUdhari(c *gin.Context) {
	entries, err := h.udhari.ListUdhari()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Udharis(entries))
}

func (h *UdhariHandler) GetUdhari(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.udhari.GetUdhari(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Udhari(entry))
}

func (h *UdhariHandler) CreateUdhari(c *gin.Context) {
	var req services.CreateUdhariRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	entry, err := h.udhari.CreateUdhari(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Udhari(entry))
}

func (h *UdhariHandler) UpdateUdhari(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateUdhariRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	entry, err := h.udhari.UpdateUdhari(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Udhari(entry))
}

func (h *UdhariHandler) DeleteUdhari(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.udhari.DeleteUdhari(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
