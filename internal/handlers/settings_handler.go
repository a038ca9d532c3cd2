// internal/handlers/settings_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) List(c *gin.Context) {
	items, err := h.settings.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.ProfileSettingsList(items))
}

func (h *SettingsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	settings, err := h.settings.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.ProfileSettings(settings))
}

func (h *SettingsHandler) Create(c *gin.Context) {
	var req services.CreateSettingsRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	settings, err := h.settings.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.ProfileSettings(settings))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateSettingsRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	settings, err := h.settings.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.ProfileSettings(settings))
}

func (h *SettingsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.settings.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
