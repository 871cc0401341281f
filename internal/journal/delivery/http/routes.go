package http

import (
	"github.com/gin-gonic/gin"

	"timetracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Routes that
// take a passphrase are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	session := rg.Group("/session")
	{
		session.GET("", h.Status)
		session.POST("/setup", mw.RateLimit(), h.Setup)
		session.POST("/unlock", mw.RateLimit(), h.Unlock)
		session.POST("/lock", h.Lock)
		session.POST("/reset", h.Reset)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/summary", h.Summary)
		tasks.POST("/:id/complete", h.CompleteTask)
		tasks.POST("/:id/elapsed", h.FoldElapsed)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	reviews := rg.Group("/reviews")
	{
		reviews.GET("/draft", h.DraftReview)
		reviews.POST("", h.RecordReview)
	}
	rg.POST("/suggestions/accept", h.AcceptSuggestions)

	sync := rg.Group("/sync")
	{
		sync.GET("/export", h.Export)
		sync.POST("/import", mw.RateLimit(), h.Import)
		sync.GET("/backup", h.Backup)
		sync.POST("/restore", mw.RateLimit(), h.Restore)
	}
}
