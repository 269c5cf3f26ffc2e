package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
	"vortex-market.backend/internal/interfaces/http/middleware"
	"vortex-market.backend/internal/interfaces/http/response"
)

type ContractService interface {
	ValidateContractOperation(ctx context.Context, actorID uuid.UUID, sourceAddr string, op *entities.ContractOperation) error
}

// ContractHandler handles smart contract operation validation
type ContractHandler struct {
	securityUsecase ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(securityUsecase ContractService) *ContractHandler {
	return &ContractHandler{securityUsecase: securityUsecase}
}

// ValidateOperation validates a contract-level action
// POST /api/v1/contracts/validate
func (h *ContractHandler) ValidateOperation(c *gin.Context) {
	var op entities.ContractOperation
	if err := c.ShouldBindJSON(&op); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.securityUsecase.ValidateContractOperation(c.Request.Context(), actorID, c.ClientIP(), &op); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"valid": true})
}
