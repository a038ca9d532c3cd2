// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/i18n"
)

func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ValidationErrorResponse(c *gin.Context, errs FieldErrors) {
	c.JSON(http.StatusBadRequest, errs)
}

func ParseErrorResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusBadRequest, gin.H{"detail": i18n.T(lang, i18n.KeyDetailParseError)})
}

func NotFoundResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusNotFound, gin.H{"detail": i18n.T(lang, i18n.KeyDetailNotFound)})
}

func InternalErrorResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": i18n.T(lang, i18n.KeyDetailInternal)})
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}
