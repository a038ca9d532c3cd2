// internal/handlers/common.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

// parseID reads the numeric path id. A non-numeric id means the route
// does not exist, so the caller gets a 404, not a 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.NotFoundResponse(c)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body and answers the parse-error shape on
// malformed input.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ParseErrorResponse(c)
		return false
	}
	return true
}

// validate runs struct validation and writes the field-error map on
// failure.
func validate(c *gin.Context, req interface{}) bool {
	if errs := utils.ValidateStruct(utils.GetLangFromContext(c), req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return false
	}
	return true
}

// respondServiceError maps a service error to the wire: field errors
// become 400, missing rows 404, anything else logs and returns 500.
func respondServiceError(c *gin.Context, err error) {
	var fieldErrs utils.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		utils.ValidationErrorResponse(c, fieldErrs)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		utils.InternalErrorResponse(c)
	}
}
