package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
	"vortex-market.backend/internal/interfaces/http/middleware"
	"vortex-market.backend/internal/interfaces/http/response"
	"vortex-market.backend/pkg/utils"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, actorID uuid.UUID, sourceAddr string, input *entities.CreateTransactionInput) (*entities.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	ListTransactions(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error)
}

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	txUsecase TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txUsecase TransactionService) *TransactionHandler {
	return &TransactionHandler{txUsecase: txUsecase}
}

// CreateTransaction validates and persists a transaction
// POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	tx, err := h.txUsecase.CreateTransaction(c.Request.Context(), actorID, c.ClientIP(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransaction gets a transaction by ID
// GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid transaction ID"))
		return
	}

	tx, err := h.txUsecase.GetTransaction(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Transaction not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transaction": tx})
}

// ListTransactions lists transactions for the current user
// GET /api/v1/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	items, total, err := h.txUsecase.ListTransactions(c.Request.Context(), actorID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"transactions": items,
		"pagination":   utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
