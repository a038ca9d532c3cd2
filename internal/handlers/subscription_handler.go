// internal/handlers/subscription_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type SubscriptionHandler struct {
	subscriptions *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptions *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptions.ListPlans()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Plans(plans))
}

func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.subscriptions.GetPlan(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Plan(plan))
}

func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var req services.CreatePlanRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	plan, err := h.subscriptions.CreatePlan(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Plan(plan))
}

func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdatePlanRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	plan, err := h.subscriptions.UpdatePlan(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Plan(plan))
}

func (h *SubscriptionHandler) DeletePlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.subscriptions.DeletePlan(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.subscriptions.ListSubscriptions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Subscriptions(subs))
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sub, err := h.subscriptions.GetSubscription(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Subscription(sub))
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req services.CreateSubscriptionRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	sub, err := h.subscriptions.CreateSubscription(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Subscription(sub))
}

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateSubscriptionRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	sub, err := h.subscriptions.UpdateSubscription(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Subscription(sub))
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.subscriptions.DeleteSubscription(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *SubscriptionHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.subscriptions.ListCoupons()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Coupons(coupons))
}

func (h *SubscriptionHandler) GetCoupon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	coupon, err := h.subscriptions.GetCoupon(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Coupon(coupon))
}

func (h *SubscriptionHandler) CreateCoupon(c *gin.Context) {
	var req services.CreateCouponRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	coupon, err := h.subscriptions.CreateCoupon(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Coupon(coupon))
}

func (h *SubscriptionHandler) UpdateCoupon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateCouponRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	coupon, err := h.subscriptions.UpdateCoupon(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Coupon(coupon))
}

func (h *SubscriptionHandler) DeleteCoupon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.subscriptions.DeleteCoupon(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
