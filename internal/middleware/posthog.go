package middleware

import (
	"net/http"
	"strings"

	"github.com/caixaflow/cash_flow_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths are never reported as product events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware reports one event per successful authenticated request,
// named after the route pattern ("/api/v1/transactions" becomes
// "api_v1_transactions"). Failed requests and anonymous traffic are not
// tracked.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// FullPath is empty for unmatched routes; nothing worth tracking there.
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
