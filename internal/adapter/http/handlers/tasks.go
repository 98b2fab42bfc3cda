package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/mapper"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/validation"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
	"github.com/DOUGSKEEZ/clio-board-sub001/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		if err == domain.ErrInvalidColumn {
			respondBadRequest(c, apierrors.MsgInvalidColumn)
			return
		}
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), middleware.GetActor(c), input)
	if err != nil {
		respondServiceError(c, "create task", err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTask(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "get task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	raw := map[string]json.RawMessage{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), middleware.GetActor(c), id, input)
	if err != nil {
		respondServiceError(c, "update task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidMovePayload)
		return
	}

	column, err := domain.ParseColumn(req.Column)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidColumn)
		return
	}

	task, err := h.taskService.Move(c.Request.Context(), middleware.GetActor(c), id, domain.MoveTaskInput{
		Column:   column,
		Position: req.Position,
	})
	if err != nil {
		respondServiceError(c, "move task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) ArchiveTask(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.Archive(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondServiceError(c, "archive task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) RestoreTask(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.Restore(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondServiceError(c, "restore task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.Complete(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondServiceError(c, "complete task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) ListColumn(c *gin.Context) {
	column, err := domain.ParseColumn(c.Param("column"))
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidColumn)
		return
	}

	entries, err := h.taskService.ListColumn(c.Request.Context(), column)
	if err != nil {
		respondServiceError(c, "list column", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToColumnEntries(entries))
}

func (h *TaskHandler) ListArchived(c *gin.Context) {
	tasks, err := h.taskService.ListArchived(c.Request.Context())
	if err != nil {
		respondServiceError(c, "list archived tasks", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTasks(tasks))
}
