package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"vortex-market.backend/internal/config"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
	"vortex-market.backend/internal/domain/repositories"
	"vortex-market.backend/internal/infrastructure/blockchain"
	"vortex-market.backend/pkg/crypto"
	"vortex-market.backend/pkg/logger"
	"vortex-market.backend/pkg/metrics"
)

// PolicyUsecase enforces the marketplace royalty and currency policy in
// front of transaction, sale and mint operations. All validators return nil
// on allow and a *domainerrors.Rejection on deny; store failures surface as
// INTERNAL_ERROR so callers fail closed.
type PolicyUsecase struct {
	artworkRepo  repositories.ArtworkRepository
	royaltyRepo  repositories.RoyaltyConfigRepository
	tokenRepo    repositories.TokenRepository
	contractRepo repositories.ContractConfigRepository
	auditRepo    repositories.AuditLogRepository
	enforcer     blockchain.RoyaltyEnforcer
	policy       config.PolicyConfig
}

// NewPolicyUsecase creates a new policy usecase
func NewPolicyUsecase(
	artworkRepo repositories.ArtworkRepository,
	royaltyRepo repositories.RoyaltyConfigRepository,
	tokenRepo repositories.TokenRepository,
	contractRepo repositories.ContractConfigRepository,
	auditRepo repositories.AuditLogRepository,
	enforcer blockchain.RoyaltyEnforcer,
	policy config.PolicyConfig,
) *PolicyUsecase {
	return &PolicyUsecase{
		artworkRepo:  artworkRepo,
		royaltyRepo:  royaltyRepo,
		tokenRepo:    tokenRepo,
		contractRepo: contractRepo,
		auditRepo:    auditRepo,
		enforcer:     enforcer,
		policy:       policy,
	}
}

// EnforceCurrency returns the platform currency regardless of the proposed
// value. It forces, it does not filter; callers must still run the currency
// check on whatever value they end up persisting.
func (u *PolicyUsecase) EnforceCurrency(proposed string) string {
	return u.policy.Currency
}

// ValidateTransaction validates a transaction before it is accepted. For
// token sales the royalty config of the referenced artwork is checked
// against the platform split.
func (u *PolicyUsecase) ValidateTransaction(ctx context.Context, actorID uuid.UUID, sourceAddr string, input *entities.CreateTransactionInput) (err error) {
	defer func() { metrics.ObserveDecision("transaction", err) }()

	if input.CurrencyType != "" && input.CurrencyType != u.policy.Currency {
		return domainerrors.Rejectf(domainerrors.CodeInvalidCurrency,
			"only %s can be used for marketplace transactions", u.policy.Currency)
	}

	if entities.TransactionType(input.Type) == entities.TransactionTypeTokenSale && input.TokenID != "" {
		tokenID, parseErr := uuid.Parse(input.TokenID)
		if parseErr != nil {
			return domainerrors.BadRequest("invalid token id")
		}

		token, getErr := u.tokenRepo.GetByID(ctx, tokenID)
		if getErr != nil && !errors.Is(getErr, domainerrors.ErrNotFound) {
			return domainerrors.Internal(getErr)
		}

		if token != nil && token.ArtworkID != nil {
			if rejErr := u.checkRoyaltySplit(ctx, *token.ArtworkID); rejErr != nil {
				return rejErr
			}
		}
	}

	u.audit(ctx, entities.AuditEventTransactionValidation, actorID, input.Type, sourceAddr)
	return nil
}

// checkRoyaltySplit verifies a stored royalty config against the platform
// policy without mutating it.
func (u *PolicyUsecase) checkRoyaltySplit(ctx context.Context, artworkID uuid.UUID) error {
	cfg, err := u.royaltyRepo.GetByArtworkID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.Reject(domainerrors.CodeMissingRoyaltyConfig,
				"artwork is missing royalty configuration")
		}
		return domainerrors.Internal(err)
	}

	if cfg.CreatorRoyaltyPercent != u.policy.CreatorRoyaltyPercent {
		return domainerrors.Rejectf(domainerrors.CodeInvalidCreatorRoyalty,
			"creator royalty must be exactly %.1f%%", u.policy.CreatorRoyaltyPercent)
	}
	if cfg.ArtistRoyaltyPercent < 0 || cfg.ArtistRoyaltyPercent > u.policy.MaxArtistRoyaltyPercent {
		return domainerrors.Rejectf(domainerrors.CodeInvalidArtistRoyalty,
			"artist royalty must be between 0%% and %.1f%%", u.policy.MaxArtistRoyaltyPercent)
	}
	expectedTotal := cfg.CreatorRoyaltyPercent + cfg.ArtistRoyaltyPercent
	if math.Abs(cfg.TotalPercent-expectedTotal) > TotalPercentTolerance {
		return domainerrors.Reject(domainerrors.CodeInvalidTotalRoyalty,
			"total royalty percentage is incorrectly calculated")
	}
	return nil
}

// ValidateSale validates an artwork sale. A drifted creator share is
// silently corrected in place rather than rejected; the correction is a
// conditional single-row update so concurrent sales cannot clobber each
// other, and is logged at WARN so operators can spot the drift.
func (u *PolicyUsecase) ValidateSale(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID, sale *entities.SaleData) (err error) {
	defer func() { metrics.ObserveDecision("sale", err) }()

	artwork, err := u.getArtwork(ctx, artworkID)
	if err != nil {
		return err
	}

	cfg, getErr := u.royaltyRepo.GetByArtworkID(ctx, artworkID)
	if getErr != nil {
		if errors.Is(getErr, domainerrors.ErrNotFound) {
			return domainerrors.Reject(domainerrors.CodeMissingRoyaltyConfig,
				"artwork is missing royalty configuration")
		}
		return domainerrors.Internal(getErr)
	}

	if cfg.CreatorRoyaltyPercent != u.policy.CreatorRoyaltyPercent {
		newTotal := u.policy.CreatorRoyaltyPercent + cfg.ArtistRoyaltyPercent
		applied, corrErr := u.royaltyRepo.CorrectCreatorShare(ctx, artworkID,
			cfg.CreatorRoyaltyPercent, u.policy.CreatorRoyaltyPercent, newTotal)
		if corrErr != nil {
			return domainerrors.Internal(corrErr)
		}
		if applied {
			metrics.RoyaltyCorrections.Inc()
			logger.Warn(ctx, "corrected creator royalty share",
				zap.String("artwork_id", artworkID.String()),
				zap.Float64("stale_percent", cfg.CreatorRoyaltyPercent),
				zap.Float64("creator_percent", u.policy.CreatorRoyaltyPercent))
		}
		cfg.CreatorRoyaltyPercent = u.policy.CreatorRoyaltyPercent
		cfg.TotalPercent = newTotal
	}

	if sale.CurrencyType != "" && sale.CurrencyType != u.policy.Currency {
		return domainerrors.Rejectf(domainerrors.CodeInvalidCurrency,
			"only %s can be used for artwork sales", u.policy.Currency)
	}

	mode := sale.TransactionMode
	if mode == "" {
		mode = entities.TransactionModeOnchain
	}
	if mode == entities.TransactionModeOnchain {
		if verErr := u.verifyOnchainEnforceable(ctx, cfg); verErr != nil {
			return verErr
		}
	}

	u.audit(ctx, entities.AuditEventSaleValidation, actorID, string(artwork.Kind), "")
	return nil
}

// verifyOnchainEnforceable checks the preconditions for routing a sale
// through the NFT contract.
func (u *PolicyUsecase) verifyOnchainEnforceable(ctx context.Context, cfg *entities.RoyaltyConfig) error {
	contract, err := u.contractRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.Reject(domainerrors.CodeContractNotConfigured,
				"NFT contract not configured")
		}
		return domainerrors.Internal(err)
	}
	if contract.NFTContractAddress == "" {
		return domainerrors.Reject(domainerrors.CodeContractNotConfigured,
			"NFT contract not configured")
	}
	if !cfg.CreatorWalletAddress.Valid || cfg.CreatorWalletAddress.String == "" {
		return domainerrors.Reject(domainerrors.CodeMissingCreatorAddress,
			"creator wallet address is not configured")
	}
	if err := u.enforcer.VerifyEnforceable(ctx, contract.NFTContractAddress, cfg.CreatorWalletAddress.String); err != nil {
		return domainerrors.Reject(domainerrors.CodeContractNotConfigured, err.Error())
	}
	return nil
}

// ValidateRoyaltyPercentages checks an artist-set royalty percentage before
// it is persisted. The total cap check is redundant with the range check
// while the creator share is a platform constant; both are kept as
// independent guards in case the creator share ever becomes configurable.
func (u *PolicyUsecase) ValidateRoyaltyPercentages(artistPercent float64) (err error) {
	defer func() { metrics.ObserveDecision("royalty_presave", err) }()

	if artistPercent < 0 || artistPercent > u.policy.MaxArtistRoyaltyPercent {
		return domainerrors.Rejectf(domainerrors.CodeInvalidArtistRoyalty,
			"artist royalty must be between 0%% and %.1f%%", u.policy.MaxArtistRoyaltyPercent)
	}

	total := u.policy.CreatorRoyaltyPercent + artistPercent
	maxTotal := u.policy.CreatorRoyaltyPercent + u.policy.MaxArtistRoyaltyPercent
	if total > maxTotal {
		return domainerrors.Rejectf(domainerrors.CodeExcessiveTotalRoyalty,
			"total royalty cannot exceed %.1f%%", maxTotal)
	}
	return nil
}

// SetRoyaltyConfig validates and persists an artist-set royalty config. The
// creator share is pinned to the platform constant and the total recomputed.
func (u *PolicyUsecase) SetRoyaltyConfig(ctx context.Context, artworkID uuid.UUID, input *entities.SetRoyaltyInput) (*entities.RoyaltyConfig, error) {
	if _, err := u.getArtwork(ctx, artworkID); err != nil {
		return nil, err
	}
	if err := u.ValidateRoyaltyPercentages(input.ArtistRoyaltyPercent); err != nil {
		return nil, err
	}

	cfg := &entities.RoyaltyConfig{
		ArtworkID:             artworkID,
		CreatorRoyaltyPercent: u.policy.CreatorRoyaltyPercent,
		ArtistRoyaltyPercent:  input.ArtistRoyaltyPercent,
		TotalPercent:          u.policy.CreatorRoyaltyPercent + input.ArtistRoyaltyPercent,
	}
	if input.CreatorWalletAddress != "" {
		cfg.CreatorWalletAddress = null.StringFrom(input.CreatorWalletAddress)
	}

	if err := u.royaltyRepo.Upsert(ctx, cfg); err != nil {
		return nil, domainerrors.Internal(err)
	}
	return cfg, nil
}

// ValidateMintMetadata validates NFT metadata before minting. Marking a
// platform-generated artwork as royalty-required is a side effect, not a
// rejection.
func (u *PolicyUsecase) ValidateMintMetadata(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID, metadata *entities.MintMetadata) (err error) {
	defer func() { metrics.ObserveDecision("mint", err) }()

	artwork, err := u.getArtwork(ctx, artworkID)
	if err != nil {
		return err
	}

	if artwork.AIGenerated && !artwork.RequiresCreatorRoyalty {
		if markErr := u.artworkRepo.MarkRequiresCreatorRoyalty(ctx, artworkID); markErr != nil {
			return domainerrors.Internal(markErr)
		}
	}

	if _, getErr := u.royaltyRepo.GetByArtworkID(ctx, artworkID); getErr != nil {
		if errors.Is(getErr, domainerrors.ErrNotFound) {
			return domainerrors.Reject(domainerrors.CodeMissingRoyaltyConfig,
				"artwork is missing royalty configuration")
		}
		return domainerrors.Internal(getErr)
	}

	hasURL := artwork.UniqueURL.Valid && artwork.UniqueURL.String != ""
	if !hasURL {
		if !metadata.GenerateUniqueURL {
			return domainerrors.Reject(domainerrors.CodeMissingUniqueURL,
				"artwork must have a unique URL for royalty enforcement")
		}
		if genErr := u.assignUniqueURL(ctx, artworkID); genErr != nil {
			return genErr
		}
	}

	u.audit(ctx, entities.AuditEventMintValidation, actorID, string(artwork.Kind), "")
	return nil
}

// assignUniqueURL generates and persists a unique URL for an artwork that
// does not have one yet. The slug is random so URLs are not enumerable.
func (u *PolicyUsecase) assignUniqueURL(ctx context.Context, artworkID uuid.UUID) error {
	slug, err := crypto.GenerateRandomToken(16)
	if err != nil {
		return domainerrors.Internal(err)
	}
	url := fmt.Sprintf("/artwork/%s/%s", artworkID, slug)
	if err := u.artworkRepo.SetUniqueURL(ctx, artworkID, url); err != nil {
		return domainerrors.Internal(err)
	}
	return nil
}

// RepairRoyaltyConfig explicitly brings a drifted royalty config back into
// compliance. Offered alongside the silent sale-time correction so the
// repair can also be invoked deliberately.
func (u *PolicyUsecase) RepairRoyaltyConfig(ctx context.Context, actorID uuid.UUID, artworkID uuid.UUID) (*entities.RepairResult, error) {
	if _, err := u.getArtwork(ctx, artworkID); err != nil {
		return nil, err
	}

	cfg, err := u.royaltyRepo.GetByArtworkID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Reject(domainerrors.CodeMissingRoyaltyConfig,
				"artwork is missing royalty configuration")
		}
		return nil, domainerrors.Internal(err)
	}

	if cfg.CreatorRoyaltyPercent == u.policy.CreatorRoyaltyPercent {
		return &entities.RepairResult{Config: cfg, Corrected: false}, nil
	}

	newTotal := u.policy.CreatorRoyaltyPercent + cfg.ArtistRoyaltyPercent
	applied, corrErr := u.royaltyRepo.CorrectCreatorShare(ctx, artworkID,
		cfg.CreatorRoyaltyPercent, u.policy.CreatorRoyaltyPercent, newTotal)
	if corrErr != nil {
		return nil, domainerrors.Internal(corrErr)
	}
	if applied {
		metrics.RoyaltyCorrections.Inc()
		u.audit(ctx, entities.AuditEventRoyaltyRepair, actorID, "royalty_config", "")
	}

	cfg.CreatorRoyaltyPercent = u.policy.CreatorRoyaltyPercent
	cfg.TotalPercent = newTotal
	return &entities.RepairResult{Config: cfg, Corrected: applied}, nil
}

func (u *PolicyUsecase) getArtwork(ctx context.Context, artworkID uuid.UUID) (*entities.Artwork, error) {
	artwork, err := u.artworkRepo.GetByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Reject(domainerrors.CodeInvalidArtwork, "invalid artwork")
		}
		return nil, domainerrors.Internal(err)
	}
	if artwork.Kind != entities.ArtworkKindArtwork {
		return nil, domainerrors.Reject(domainerrors.CodeInvalidArtwork, "invalid artwork")
	}
	return artwork, nil
}

// audit appends an allow-decision entry. Append failures are logged, not
// propagated; the decision has already been made.
func (u *PolicyUsecase) audit(ctx context.Context, eventType string, actorID uuid.UUID, subjectType, sourceAddr string) {
	entry := &entities.AuditEntry{
		EventType:   eventType,
		Status:      entities.AuditStatusValid,
		SubjectType: subjectType,
	}
	if actorID != uuid.Nil {
		entry.ActorID = &actorID
	}
	if sourceAddr != "" {
		entry.SourceAddress = null.StringFrom(sourceAddr)
	}
	if err := u.auditRepo.Append(ctx, entry); err != nil {
		logger.Error(ctx, "failed to append audit entry",
			zap.String("event_type", eventType), zap.Error(err))
	}
}
