package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
)

func TestTransactionRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	tokenID := uuid.New()
	tx := &entities.Transaction{
		ActorID:       uuid.New(),
		Type:          entities.TransactionTypeTokenSale,
		CurrencyType:  "tola_credit",
		Amount:        75.5,
		TokenID:       &tokenID,
		WalletAddress: null.StringFrom("TOLAabcdefghijklmnopqrstuvwxyz0123456789"),
		Status:        entities.TransactionStatusAccepted,
		Timestamp:     time.Now().Truncate(time.Second),
	}
	require.NoError(t, repo.Create(ctx, tx))
	require.NotEqual(t, uuid.Nil, tx.ID)

	got, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	require.Equal(t, entities.TransactionTypeTokenSale, got.Type)
	require.Equal(t, "tola_credit", got.CurrencyType)
	require.Equal(t, 75.5, got.Amount)
	require.Equal(t, entities.TransactionStatusAccepted, got.Status)
	require.NotNil(t, got.TokenID)
	require.Equal(t, tokenID, *got.TokenID)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTransactionRepository_GetByActorID(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	actorID := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entities.Transaction{
			ActorID:      actorID,
			Type:         entities.TransactionTypeTransfer,
			CurrencyType: "tola_credit",
			Amount:       float64(10 * (i + 1)),
			Status:       entities.TransactionStatusAccepted,
			Timestamp:    time.Now(),
		}))
	}
	// Another actor's transaction must not leak into the listing.
	require.NoError(t, repo.Create(ctx, &entities.Transaction{
		ActorID:      uuid.New(),
		Type:         entities.TransactionTypeTransfer,
		CurrencyType: "tola_credit",
		Amount:       999,
		Status:       entities.TransactionStatusAccepted,
		Timestamp:    time.Now(),
	}))

	items, total, err := repo.GetByActorID(ctx, actorID, 2, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	for _, item := range items {
		require.Equal(t, actorID, item.ActorID)
	}

	items, total, err = repo.GetByActorID(ctx, actorID, 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, items, 1)
}
