package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
	"vortex-market.backend/internal/domain/repositories"
)

// TransactionUsecase composes the security screen and the policy validator
// in front of the transaction ledger. A transaction is persisted only after
// both allow it, and is immutable afterwards.
type TransactionUsecase struct {
	policy   *PolicyUsecase
	security *SecurityUsecase
	txRepo   repositories.TransactionRepository
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(policy *PolicyUsecase, security *SecurityUsecase, txRepo repositories.TransactionRepository) *TransactionUsecase {
	return &TransactionUsecase{
		policy:   policy,
		security: security,
		txRepo:   txRepo,
	}
}

// CreateTransaction screens, validates and persists a transaction. The
// currency is forced to the platform currency regardless of the proposed
// value before the record is written.
func (u *TransactionUsecase) CreateTransaction(ctx context.Context, actorID uuid.UUID, sourceAddr string, input *entities.CreateTransactionInput) (*entities.Transaction, error) {
	if err := u.security.ScreenTransaction(ctx, input); err != nil {
		return nil, err
	}
	if err := u.policy.ValidateTransaction(ctx, actorID, sourceAddr, input); err != nil {
		return nil, err
	}

	tx := &entities.Transaction{
		ActorID:      actorID,
		Type:         entities.TransactionType(input.Type),
		CurrencyType: u.policy.EnforceCurrency(input.CurrencyType),
		Amount:       input.Amount,
		Status:       entities.TransactionStatusAccepted,
		Timestamp:    time.Unix(input.Timestamp, 0),
	}
	if input.TokenID != "" {
		tokenID, err := uuid.Parse(input.TokenID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid token id")
		}
		tx.TokenID = &tokenID
	}
	if input.WalletAddress != "" {
		tx.WalletAddress = null.StringFrom(input.WalletAddress)
	}

	if err := u.txRepo.Create(ctx, tx); err != nil {
		return nil, domainerrors.Internal(err)
	}
	return tx, nil
}

// GetTransaction returns an accepted transaction by id.
func (u *TransactionUsecase) GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	return u.txRepo.GetByID(ctx, id)
}

// ListTransactions returns the actor's accepted transactions, newest first.
func (u *TransactionUsecase) ListTransactions(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	return u.txRepo.GetByActorID(ctx, actorID, limit, offset)
}
