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

type RoyaltyService interface {
	ValidateRoyaltyPercentages(artistPercent float64) error
	SetRoyaltyConfig(ctx context.Context, artworkID uuid.UUID, input *entities.SetRoyaltyInput) (*entities.RoyaltyConfig, error)
	RepairRoyaltyConfig(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID) (*entities.RepairResult, error)
}

// RoyaltyHandler handles royalty config endpoints
type RoyaltyHandler struct {
	policyUsecase RoyaltyService
}

// NewRoyaltyHandler creates a new royalty handler
func NewRoyaltyHandler(policyUsecase RoyaltyService) *RoyaltyHandler {
	return &RoyaltyHandler{policyUsecase: policyUsecase}
}

// ValidateRoyalty checks an artist royalty percentage before saving
// POST /api/v1/royalties/validate
func (h *RoyaltyHandler) ValidateRoyalty(c *gin.Context) {
	var input entities.ValidateRoyaltyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.policyUsecase.ValidateRoyaltyPercentages(input.ArtistRoyaltyPercent); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"valid": true})
}

// SetRoyalty validates and persists a royalty config for an artwork
// PUT /api/v1/royalties/:artworkId
func (h *RoyaltyHandler) SetRoyalty(c *gin.Context) {
	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid artwork ID"))
		return
	}

	var input entities.SetRoyaltyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	cfg, err := h.policyUsecase.SetRoyaltyConfig(c.Request.Context(), artworkID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"royaltyConfig": cfg})
}

// RepairRoyalty explicitly corrects a drifted royalty config
// POST /api/v1/royalties/:artworkId/repair
func (h *RoyaltyHandler) RepairRoyalty(c *gin.Context) {
	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid artwork ID"))
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	result, err := h.policyUsecase.RepairRoyaltyConfig(c.Request.Context(), actorID, artworkID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
