// internal/handlers/ledger_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type LedgerHandler struct {
	ledger *services.LedgerService
}

func NewLedgerHandler(ledger *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

func (h *LedgerHandler) ListCategories(c *gin.Context) {
	categories, err := h.ledger.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Categories(categories))
}

func (h *LedgerHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.ledger.GetCategory(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Category(category))
}

func (h *LedgerHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	category, err := h.ledger.CreateCategory(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Category(category))
}

func (h *LedgerHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateCategoryRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	category, err := h.ledger.UpdateCategory(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Category(category))
}

func (h *LedgerHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ledger.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *LedgerHandler) ListEntries(c *gin.Context) {
	entries, err := h.ledger.ListEntries()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.IncomeExpenses(entries))
}

func (h *LedgerHandler) GetEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.ledger.GetEntry(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.IncomeExpense(entry))
}

func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	var req services.CreateEntryRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	entry, err := h.ledger.CreateEntry(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.IncomeExpense(entry))
}

func (h *LedgerHandler) UpdateEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateEntryRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	entry, err := h.ledger.UpdateEntry(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.IncomeExpense(entry))
}

func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ledger.DeleteEntry(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
