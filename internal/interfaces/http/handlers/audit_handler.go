package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"vortex-market.backend/internal/domain/entities"
	"vortex-market.backend/internal/interfaces/http/response"
	"vortex-market.backend/pkg/utils"
)

type AuditService interface {
	ListRecent(ctx context.Context, limit, offset int) ([]*entities.AuditEntry, int64, error)
}

// AuditHandler exposes the audit log for compliance review
type AuditHandler struct {
	auditRepo AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditRepo AuditService) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// ListAuditEntries lists recent validation decisions, newest first
// GET /api/v1/audit
func (h *AuditHandler) ListAuditEntries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	params := utils.GetPaginationParams(page, limit)

	entries, total, err := h.auditRepo.ListRecent(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"entries":    entries,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
