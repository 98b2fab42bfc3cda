package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/mapper"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
	"github.com/DOUGSKEEZ/clio-board-sub001/pkg/apierrors"
)

type DividerHandler struct {
	dividerService ports.DividerService
}

func NewDividerHandler(dividerService ports.DividerService) *DividerHandler {
	return &DividerHandler{dividerService: dividerService}
}

func (h *DividerHandler) MoveDivider(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidDividerID)
	if !ok {
		return
	}

	var req dto.MoveDividerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Position == nil {
		respondBadRequest(c, apierrors.MsgInvalidMovePayload)
		return
	}

	divider, err := h.dividerService.Move(c.Request.Context(), middleware.GetActor(c), id, *req.Position)
	if err != nil {
		respondServiceError(c, "move divider", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDivider(divider))
}
