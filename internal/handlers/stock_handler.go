// internal/handlers/stock_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type StockHandler struct {
	stock *services.StockService
}

func NewStockHandler(stock *services.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

func (h *StockHandler) ListItems(c *gin.Context) {
	items, err := h.stock.ListItems()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.StockItems(items))
}

func (h *StockHandler) GetItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.stock.GetItem(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.StockItem(item))
}

func (h *StockHandler) CreateItem(c *gin.Context) {
	var req services.CreateStockItemRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	item, err := h.stock.CreateItem(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.StockItem(item))
}

func (h *StockHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateStockItemRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	item, err := h.stock.UpdateItem(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.StockItem(item))
}

func (h *StockHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.stock.DeleteItem(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *StockHandler) ListTransactions(c *gin.Context) {
	txns, err := h.stock.ListTransactions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.StockTransactions(txns))
}

func (h *StockHandler) GetTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	txn, err := h.stock.GetTransaction(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.StockTransaction(txn))
}

func (h *StockHandler) CreateTransaction(c *gin.Context) {
	var req services.CreateStockTransactionRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	txn, err := h.stock.CreateTransaction(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.StockTransaction(txn))
}

func (h *StockHandler) UpdateTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateStockTransactionRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	txn, err := h.stock.UpdateTransaction(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.StockTransaction(txn))
}

func (h *StockHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.stock.DeleteTransaction(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
