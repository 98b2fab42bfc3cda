package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/pkg/apierrors"
)

// respondServiceError translates core errors into the API error contract.
// Deterministic errors (not found, conflicts, bad columns) carry enough
// detail to correct the request; storage failures are logged and masked.
func respondServiceError(c *gin.Context, operation string, err error) {
	lang := middleware.GetLang(c)

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgItemNotFound, lang))
	case errors.Is(err, domain.ErrDividerNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgDividerNotFound, lang))
	case errors.Is(err, domain.ErrRoutineNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgRoutineNotFound, lang))
	case errors.Is(err, domain.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoteNotFound, lang))
	case errors.Is(err, domain.ErrTaskNotArchived):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgTaskNotArchived, lang))
	case errors.Is(err, domain.ErrInvalidColumn):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidColumn, lang))
	default:
		zap.L().Error("operation failed", zap.String("operation", operation), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgStorageFailure, lang))
	}
}

func respondBadRequest(c *gin.Context, msgKey string) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msgKey, lang))
}

// pathID parses a positive numeric path parameter; responds 400 on failure.
func pathID(c *gin.Context, name, msgKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, msgKey)
		return 0, false
	}
	return id, true
}
