// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// I18nMiddleware resolves the response language from Accept-Language.
// The backend speaks the same three languages the app offers its users.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := "en"

		header := c.GetHeader("Accept-Language")
		if header != "" {
			// Handle cases like "hi-IN,hi;q=0.9,en;q=0.8"
			first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
			switch {
			case first == "hi" || strings.HasPrefix(first, "hi-"):
				lang = "hi"
			case first == "mr" || strings.HasPrefix(first, "mr-"):
				lang = "mr"
			default:
				lang = "en"
			}
		}

		c.Set("lang", lang)
		c.Next()
	}
}
