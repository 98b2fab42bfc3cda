package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/mapper"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

type AuditHandler struct {
	auditService ports.AuditService
}

func NewAuditHandler(auditService ports.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) ListAudit(c *gin.Context) {
	filter := ports.AuditFilter{
		EntityType: domain.EntityType(c.Query("entity_type")),
	}
	if v := c.Query("entity_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			filter.EntityID = id
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	entries, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, "list audit log", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuditEntries(entries))
}
