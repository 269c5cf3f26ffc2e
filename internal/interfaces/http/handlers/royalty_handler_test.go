package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
)

type royaltyServiceStub struct {
	validateFn func(artistPercent float64) error
	setFn      func(ctx context.Context, artworkID uuid.UUID, input *entities.SetRoyaltyInput) (*entities.RoyaltyConfig, error)
	repairFn   func(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID) (*entities.RepairResult, error)
}

func (s *royaltyServiceStub) ValidateRoyaltyPercentages(artistPercent float64) error {
	return s.validateFn(artistPercent)
}

func (s *royaltyServiceStub) SetRoyaltyConfig(ctx context.Context, artworkID uuid.UUID, input *entities.SetRoyaltyInput) (*entities.RoyaltyConfig, error) {
	return s.setFn(ctx, artworkID, input)
}

func (s *royaltyServiceStub) RepairRoyaltyConfig(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID) (*entities.RepairResult, error) {
	return s.repairFn(ctx, actorID, artworkID)
}

func newRoyaltyRouter(userID uuid.UUID, svc *royaltyServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRoyaltyHandler(svc)
	r := gin.New()
	r.POST("/royalties/validate", withUser(userID), h.ValidateRoyalty)
	r.PUT("/royalties/:artworkId", withUser(userID), h.SetRoyalty)
	r.POST("/royalties/:artworkId/repair", withUser(userID), h.RepairRoyalty)
	return r
}

func TestRoyaltyHandler_ValidateOK(t *testing.T) {
	svc := &royaltyServiceStub{
		validateFn: func(artistPercent float64) error {
			require.Equal(t, 10.0, artistPercent)
			return nil
		},
	}
	r := newRoyaltyRouter(uuid.New(), svc)

	rec := doJSON(r, http.MethodPost, "/royalties/validate", `{"artistRoyaltyPercent":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "true")
}

func TestRoyaltyHandler_ValidateRejected(t *testing.T) {
	svc := &royaltyServiceStub{
		validateFn: func(float64) error {
			return domainerrors.Reject(domainerrors.CodeInvalidArtistRoyalty, "artist royalty must be between 0% and 15.0%")
		},
	}
	r := newRoyaltyRouter(uuid.New(), svc)

	rec := doJSON(r, http.MethodPost, "/royalties/validate", `{"artistRoyaltyPercent":20}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_ARTIST_ROYALTY")
}

func TestRoyaltyHandler_Set(t *testing.T) {
	artworkID := uuid.New()
	svc := &royaltyServiceStub{
		setFn: func(_ context.Context, got uuid.UUID, input *entities.SetRoyaltyInput) (*entities.RoyaltyConfig, error) {
			require.Equal(t, artworkID, got)
			return &entities.RoyaltyConfig{
				ArtworkID:             got,
				CreatorRoyaltyPercent: 5.0,
				ArtistRoyaltyPercent:  input.ArtistRoyaltyPercent,
				TotalPercent:          5.0 + input.ArtistRoyaltyPercent,
			}, nil
		},
	}
	r := newRoyaltyRouter(uuid.New(), svc)

	rec := doJSON(r, http.MethodPut, "/royalties/"+artworkID.String(), `{"artistRoyaltyPercent":12}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "royaltyConfig")
}

func TestRoyaltyHandler_SetBadArtworkID(t *testing.T) {
	r := newRoyaltyRouter(uuid.New(), &royaltyServiceStub{})

	rec := doJSON(r, http.MethodPut, "/royalties/not-a-uuid", `{"artistRoyaltyPercent":12}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoyaltyHandler_Repair(t *testing.T) {
	userID := uuid.New()
	artworkID := uuid.New()
	svc := &royaltyServiceStub{
		repairFn: func(_ context.Context, actorID uuid.UUID, got uuid.UUID) (*entities.RepairResult, error) {
			require.Equal(t, userID, actorID)
			require.Equal(t, artworkID, got)
			return &entities.RepairResult{
				Config:    &entities.RoyaltyConfig{ArtworkID: got, CreatorRoyaltyPercent: 5.0},
				Corrected: true,
			}, nil
		},
	}
	r := newRoyaltyRouter(userID, svc)

	rec := doJSON(r, http.MethodPost, "/royalties/"+artworkID.String()+"/repair", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"corrected":true`)
}
