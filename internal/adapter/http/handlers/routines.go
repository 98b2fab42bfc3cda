package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/mapper"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
	"github.com/DOUGSKEEZ/clio-board-sub001/pkg/apierrors"
)

type RoutineHandler struct {
	routineService ports.RoutineService
}

func NewRoutineHandler(routineService ports.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	var req dto.CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidRoutine)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondBadRequest(c, apierrors.MsgInvalidRoutine)
		return
	}

	routine, err := h.routineService.Create(c.Request.Context(), middleware.GetActor(c), name)
	if err != nil {
		respondServiceError(c, "create routine", err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToRoutine(routine))
}

func (h *RoutineHandler) ListRoutines(c *gin.Context) {
	routines, err := h.routineService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "list routines", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRoutines(routines))
}

func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidRoutineID)
	if !ok {
		return
	}

	if err := h.routineService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondServiceError(c, "delete routine", err)
		return
	}

	c.Status(http.StatusNoContent)
}
