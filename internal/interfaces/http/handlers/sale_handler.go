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

type SaleService interface {
	ValidateSale(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID, sale *entities.SaleData) error
}

// SaleHandler handles artwork sale validation
type SaleHandler struct {
	policyUsecase SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(policyUsecase SaleService) *SaleHandler {
	return &SaleHandler{policyUsecase: policyUsecase}
}

// ValidateSale validates an artwork sale before the host proceeds
// POST /api/v1/sales/:artworkId/validate
func (h *SaleHandler) ValidateSale(c *gin.Context) {
	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid artwork ID"))
		return
	}

	var sale entities.SaleData
	if err := c.ShouldBindJSON(&sale); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.policyUsecase.ValidateSale(c.Request.Context(), actorID, artworkID, &sale); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"valid": true})
}
