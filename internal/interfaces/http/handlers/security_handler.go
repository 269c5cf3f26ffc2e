package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "vortex-market.backend/internal/domain/errors"
	"vortex-market.backend/internal/interfaces/http/middleware"
	"vortex-market.backend/internal/interfaces/http/response"
)

type NonceService interface {
	IssueNonce(ctx context.Context, actorID uuid.UUID, purpose string) (string, error)
}

// SecurityHandler handles nonce issuance
type SecurityHandler struct {
	securityUsecase NonceService
}

// NewSecurityHandler creates a new security handler
func NewSecurityHandler(securityUsecase NonceService) *SecurityHandler {
	return &SecurityHandler{securityUsecase: securityUsecase}
}

type issueNonceInput struct {
	Purpose string `json:"purpose" binding:"required"`
}

// IssueNonce issues a one-time security token for a declared purpose
// POST /api/v1/security/nonce
func (h *SecurityHandler) IssueNonce(c *gin.Context) {
	var input issueNonceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	token, err := h.securityUsecase.IssueNonce(c.Request.Context(), actorID, input.Purpose)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"nonce": token})
}
