package http

import (
	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/handlers"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Task    *handlers.TaskHandler
	Divider *handlers.DividerHandler
	Audit   *handlers.AuditHandler
	Routine *handlers.RoutineHandler
	Note    *handlers.NoteHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, agentToken string) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.ActorMiddleware(agentToken))
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/tasks", h.Task.CreateTask)
		api.GET("/tasks/:id", h.Task.GetTask)
		api.PATCH("/tasks/:id", h.Task.UpdateTask)
		api.POST("/tasks/:id/move", h.Task.MoveTask)
		api.POST("/tasks/:id/archive", h.Task.ArchiveTask)
		api.POST("/tasks/:id/restore", h.Task.RestoreTask)
		api.POST("/tasks/:id/complete", h.Task.CompleteTask)
		api.POST("/tasks/:id/items", h.Task.AddItem)
		api.PATCH("/tasks/:id/items/:itemID", h.Task.UpdateItem)
		api.DELETE("/tasks/:id/items/:itemID", h.Task.DeleteItem)

		api.GET("/columns/:column", h.Task.ListColumn)
		api.GET("/archive", h.Task.ListArchived)

		api.POST("/dividers/:id/move", h.Divider.MoveDivider)

		api.GET("/audit", h.Audit.ListAudit)

		api.POST("/routines", h.Routine.CreateRoutine)
		api.GET("/routines", h.Routine.ListRoutines)
		api.DELETE("/routines/:id", h.Routine.DeleteRoutine)

		api.POST("/notes", h.Note.CreateNote)
		api.GET("/notes", h.Note.ListNotes)
		api.PATCH("/notes/:id", h.Note.UpdateNote)
		api.DELETE("/notes/:id", h.Note.DeleteNote)
	}
}
