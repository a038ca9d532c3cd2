// internal/handlers/feedback_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type FeedbackHandler struct {
	feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) List(c *gin.Context) {
	tickets, err := h.feedback.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.FeedbackTickets(tickets))
}

func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ticket, err := h.feedback.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.FeedbackTicket(ticket))
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req services.CreateTicketRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	ticket, err := h.feedback.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.FeedbackTicket(ticket))
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateTicketRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	ticket, err := h.feedback.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.FeedbackTicket(ticket))
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.feedback.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
