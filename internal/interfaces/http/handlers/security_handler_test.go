package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type nonceServiceStub struct {
	issueFn func(ctx context.Context, actorID uuid.UUID, purpose string) (string, error)
}

func (s *nonceServiceStub) IssueNonce(ctx context.Context, actorID uuid.UUID, purpose string) (string, error) {
	return s.issueFn(ctx, actorID, purpose)
}

func newSecurityRouter(userID uuid.UUID, svc *nonceServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSecurityHandler(svc)
	r := gin.New()
	r.POST("/security/nonce", withUser(userID), h.IssueNonce)
	return r
}

func TestSecurityHandler_IssueNonce(t *testing.T) {
	userID := uuid.New()
	svc := &nonceServiceStub{
		issueFn: func(_ context.Context, actorID uuid.UUID, purpose string) (string, error) {
			require.Equal(t, userID, actorID)
			require.Equal(t, "transaction", purpose)
			return "deadbeef", nil
		},
	}
	r := newSecurityRouter(userID, svc)

	rec := doJSON(r, http.MethodPost, "/security/nonce", `{"purpose":"transaction"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "deadbeef")
}

func TestSecurityHandler_MissingPurpose(t *testing.T) {
	r := newSecurityRouter(uuid.New(), &nonceServiceStub{})

	rec := doJSON(r, http.MethodPost, "/security/nonce", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSecurityHandler_StoreFailure(t *testing.T) {
	svc := &nonceServiceStub{
		issueFn: func(context.Context, uuid.UUID, string) (string, error) {
			return "", errors.New("redis unavailable")
		},
	}
	r := newSecurityRouter(uuid.New(), svc)

	rec := doJSON(r, http.MethodPost, "/security/nonce", `{"purpose":"transaction"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
