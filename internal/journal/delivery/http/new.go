package http

import (
	"github.com/gin-gonic/gin"

	"timetracker/internal/journal"
	"timetracker/pkg/log"
)

// Handler is the public interface for the journal HTTP delivery layer.
type Handler interface {
	Status(c *gin.Context)
	Setup(c *gin.Context)
	Unlock(c *gin.Context)
	Lock(c *gin.Context)
	Reset(c *gin.Context)

	ListTasks(c *gin.Context)
	CreateTask(c *gin.Context)
	CompleteTask(c *gin.Context)
	FoldElapsed(c *gin.Context)
	DeleteTask(c *gin.Context)
	Summary(c *gin.Context)

	DraftReview(c *gin.Context)
	RecordReview(c *gin.Context)
	AcceptSuggestions(c *gin.Context)

	Export(c *gin.Context)
	Import(c *gin.Context)
	Backup(c *gin.Context)
	Restore(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc journal.UseCase
}

// New creates a new HTTP handler for the journal.
func New(l log.Logger, uc journal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
