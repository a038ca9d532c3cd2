// internal/handlers/content_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type ContentHandler struct {
	content *services.ContentService
	storage *services.StorageService
}

func NewContentHandler(content *services.ContentService, storage *services.StorageService) *ContentHandler {
	return &ContentHandler{content: content, storage: storage}
}

func (h *ContentHandler) ListBanners(c *gin.Context) {
	banners, err := h.content.ListBanners()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]serializers.BannerResponse, 0, len(banners))
	for i := range banners {
		out = append(out, serializers.Banner(&banners[i], h.storage.PublicURL(banners[i].Image)))
	}
	utils.OKResponse(c, out)
}

func (h *ContentHandler) GetBanner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	banner, err := h.content.GetBanner(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Banner(banner, h.storage.PublicURL(banner.Image)))
}

func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var req services.CreateBannerRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	banner, err := h.content.CreateBanner(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Banner(banner, h.storage.PublicURL(banner.Image)))
}

func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateBannerRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	banner, err := h.content.UpdateBanner(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Banner(banner, h.storage.PublicURL(banner.Image)))
}

func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.content.DeleteBanner(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *ContentHandler) ListTutorials(c *gin.Context) {
	tutorials, err := h.content.ListTutorials()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Tutorials(tutorials))
}

func (h *ContentHandler) GetTutorial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tutorial, err := h.content.GetTutorial(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Tutorial(tutorial))
}

func (h *ContentHandler) CreateTutorial(c *gin.Context) {
	var req services.CreateTutorialRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	tutorial, err := h.content.CreateTutorial(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Tutorial(tutorial))
}

func (h *ContentHandler) UpdateTutorial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateTutorialRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	tutorial, err := h.content.UpdateTutorial(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Tutorial(tutorial))
}

func (h *ContentHandler) DeleteTutorial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.content.DeleteTutorial(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
