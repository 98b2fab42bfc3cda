package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/mapper"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/validation"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/pkg/apierrors"
)

// Checklist item endpoints live on the task handler: items have no read API
// of their own, every response is the owning task.

func (h *TaskHandler) AddItem(c *gin.Context) {
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidItemPayload)
		return
	}

	task, err := h.taskService.AddItem(c.Request.Context(), middleware.GetActor(c), taskID, domain.AddItemInput{
		Title: req.Title,
	})
	if err != nil {
		respondServiceError(c, "add item", err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTask(task))
}

func (h *TaskHandler) UpdateItem(c *gin.Context) {
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID", apierrors.MsgInvalidItemID)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidItemPayload)
		return
	}

	input, err := validation.BuildUpdateItemInput(req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidItemPayload)
		return
	}

	task, err := h.taskService.UpdateItem(c.Request.Context(), middleware.GetActor(c), taskID, itemID, input)
	if err != nil {
		respondServiceError(c, "update item", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) DeleteItem(c *gin.Context) {
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID", apierrors.MsgInvalidItemID)
	if !ok {
		return
	}

	task, err := h.taskService.DeleteItem(c.Request.Context(), middleware.GetActor(c), taskID, itemID)
	if err != nil {
		respondServiceError(c, "delete item", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}
