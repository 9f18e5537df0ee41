package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Suggestion routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	task := rg.Group("/task", mw.RateLimit())
	{
		task.POST("/suggestions", h.Suggest)
		task.POST("/title-suggestions", h.SuggestTitles)
	}
}
