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

type MintService interface {
	ValidateMintMetadata(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID, metadata *entities.MintMetadata) error
}

type ContentScreener interface {
	ScreenContent(content string) error
}

// MintHandler handles NFT mint metadata validation
type MintHandler struct {
	policyUsecase MintService
	screener      ContentScreener
}

// NewMintHandler creates a new mint handler
func NewMintHandler(policyUsecase MintService, screener ContentScreener) *MintHandler {
	return &MintHandler{policyUsecase: policyUsecase, screener: screener}
}

// ValidateMint validates NFT metadata before minting
// POST /api/v1/mints/:artworkId/validate
func (h *MintHandler) ValidateMint(c *gin.Context) {
	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid artwork ID"))
		return
	}

	var metadata entities.MintMetadata
	if err := c.ShouldBindJSON(&metadata); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if metadata.Description != "" {
		if err := h.screener.ScreenContent(metadata.Description); err != nil {
			response.Error(c, err)
			return
		}
	}

	if err := h.policyUsecase.ValidateMintMetadata(c.Request.Context(), actorID, artworkID, &metadata); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"valid": true})
}
