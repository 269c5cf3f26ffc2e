package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"vortex-market.backend/internal/domain/entities"
)

// Mock ArtworkRepository
type MockArtworkRepository struct {
	mock.Mock
}

func (m *MockArtworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) Create(ctx context.Context, artwork *entities.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}

func (m *MockArtworkRepository) MarkRequiresCreatorRoyalty(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtworkRepository) SetUniqueURL(ctx context.Context, id uuid.UUID, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

// Mock TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Token), args.Error(1)
}

func (m *MockTokenRepository) Create(ctx context.Context, token *entities.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Mock RoyaltyConfigRepository
type MockRoyaltyConfigRepository struct {
	mock.Mock
}

func (m *MockRoyaltyConfigRepository) GetByArtworkID(ctx context.Context, artworkID uuid.UUID) (*entities.RoyaltyConfig, error) {
	args := m.Called(ctx, artworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RoyaltyConfig), args.Error(1)
}

func (m *MockRoyaltyConfigRepository) Upsert(ctx context.Context, config *entities.RoyaltyConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockRoyaltyConfigRepository) CorrectCreatorShare(ctx context.Context, artworkID uuid.UUID, stalePercent, creatorPercent, totalPercent float64) (bool, error) {
	args := m.Called(ctx, artworkID, stalePercent, creatorPercent, totalPercent)
	return args.Bool(0), args.Error(1)
}

// Mock ContractConfigRepository
type MockContractConfigRepository struct {
	mock.Mock
}

func (m *MockContractConfigRepository) GetActive(ctx context.Context) (*entities.ContractConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContractConfig), args.Error(1)
}

func (m *MockContractConfigRepository) Upsert(ctx context.Context, config *entities.ContractConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

// Mock TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetByActorID(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	args := m.Called(ctx, actorID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Transaction), args.Get(1).(int64), args.Error(2)
}

// Mock AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *entities.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListRecent(ctx context.Context, limit, offset int) ([]*entities.AuditEntry, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.AuditEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// Mock RoyaltyEnforcer
type MockRoyaltyEnforcer struct {
	mock.Mock
}

func (m *MockRoyaltyEnforcer) VerifyEnforceable(ctx context.Context, contractAddress, creatorWallet string) error {
	args := m.Called(ctx, contractAddress, creatorWallet)
	return args.Error(0)
}
