package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

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
	"vortex-market.backend/pkg/redis"
)

// Nonce purposes
const (
	NoncePurposeTransaction = "transaction"
	NoncePurposeContract    = "contract"
)

var (
	redisSet    = redis.Set
	redisGetDel = redis.GetDel
)

// SecurityUsecase screens inbound operations before the policy layer:
// replay windows, wallet formats, one-time nonces, prohibited content and
// contract-operation integrity.
type SecurityUsecase struct {
	auditRepo repositories.AuditLogRepository
	policy    config.PolicyConfig
	security  config.SecurityConfig
	clock     func() time.Time
}

// NewSecurityUsecase creates a new security usecase
func NewSecurityUsecase(auditRepo repositories.AuditLogRepository, policy config.PolicyConfig, security config.SecurityConfig) *SecurityUsecase {
	return &SecurityUsecase{
		auditRepo: auditRepo,
		policy:    policy,
		security:  security,
		clock:     time.Now,
	}
}

// SetClock overrides the time source (used for testing)
func (u *SecurityUsecase) SetClock(clock func() time.Time) {
	u.clock = clock
}

// IssueNonce issues a one-time token scoped to a purpose. The token expires
// after the configured TTL and validates at most once.
func (u *SecurityUsecase) IssueNonce(ctx context.Context, actorID uuid.UUID, purpose string) (string, error) {
	token, err := crypto.GenerateRandomToken(16)
	if err != nil {
		return "", err
	}
	key := nonceKey(purpose, token)
	if err := redisSet(ctx, key, actorID.String(), u.security.NonceTTL); err != nil {
		return "", err
	}
	return token, nil
}

// ConsumeNonce validates and consumes a one-time token. GETDEL makes the
// consumption atomic: a token never validates twice.
func (u *SecurityUsecase) ConsumeNonce(ctx context.Context, purpose, token string) error {
	if token == "" {
		return domainerrors.Reject(domainerrors.CodeSecurityCheckFailed, "security token is required")
	}
	_, err := redisGetDel(ctx, nonceKey(purpose, token))
	if err != nil {
		if redis.IsNil(err) {
			return domainerrors.Reject(domainerrors.CodeSecurityCheckFailed, "security validation failed")
		}
		return domainerrors.Internal(err)
	}
	return nil
}

// ScreenTransaction runs the security checks on a transaction before policy
// validation: positive amount, wallet format, replay window, nonce and
// content screening.
func (u *SecurityUsecase) ScreenTransaction(ctx context.Context, input *entities.CreateTransactionInput) error {
	if input.Amount <= 0 {
		return domainerrors.Reject(domainerrors.CodeSecurityCheckFailed,
			"transaction amount must be positive")
	}

	if input.WalletAddress != "" && !walletAddressPattern.MatchString(input.WalletAddress) {
		return domainerrors.Reject(domainerrors.CodeSecurityCheckFailed,
			"wallet address format is invalid")
	}

	// Reject replays: the declared timestamp must fall inside the accepted
	// window around now.
	ts := time.Unix(input.Timestamp, 0)
	diff := u.clock().Sub(ts)
	if diff > u.policy.ReplayWindowPast || diff < -u.policy.ReplayWindowFuture {
		return domainerrors.Reject(domainerrors.CodeSecurityCheckFailed,
			"transaction timestamp outside accepted window")
	}

	if input.SecurityNonce != "" {
		if err := u.ConsumeNonce(ctx, NoncePurposeTransaction, input.SecurityNonce); err != nil {
			return err
		}
	}

	if input.Description != "" {
		if err := u.ScreenContent(input.Description); err != nil {
			return err
		}
	}
	return nil
}

// ScreenContent checks free text against the prohibited-content denylist.
func (u *SecurityUsecase) ScreenContent(content string) error {
	lowered := strings.ToLower(content)
	for _, term := range prohibitedTerms {
		if strings.Contains(lowered, term) {
			return domainerrors.Reject(domainerrors.CodeProhibitedContent,
				"content contains prohibited terms")
		}
	}
	return nil
}

// ValidateContractOperation validates a contract-level action: hash format,
// royalty bounds and nonce.
func (u *SecurityUsecase) ValidateContractOperation(ctx context.Context, actorID uuid.UUID, sourceAddr string, op *entities.ContractOperation) (err error) {
	defer func() { metrics.ObserveDecision("contract", err) }()

	if op.SecurityNonce != "" {
		if err := u.ConsumeNonce(ctx, NoncePurposeContract, op.SecurityNonce); err != nil {
			return err
		}
	}

	if op.ContractHash != "" && !blockchain.IsContractHash(op.ContractHash) {
		return domainerrors.Reject(domainerrors.CodeSecurityCheckFailed,
			"contract hash format is invalid")
	}

	if op.RoyaltyPercentage != nil {
		pct := *op.RoyaltyPercentage
		if pct < 0 || pct > u.policy.MaxContractRoyaltyPct {
			return domainerrors.Reject(domainerrors.CodeSecurityCheckFailed,
				fmt.Sprintf("royalty percentage must be between 0%% and %.1f%%", u.policy.MaxContractRoyaltyPct))
		}
	}

	entry := &entities.AuditEntry{
		EventType:   entities.AuditEventContractValidation,
		Status:      entities.AuditStatusValid,
		SubjectType: op.Type,
	}
	if actorID != uuid.Nil {
		entry.ActorID = &actorID
	}
	if sourceAddr != "" {
		entry.SourceAddress = null.StringFrom(sourceAddr)
	}
	if appendErr := u.auditRepo.Append(ctx, entry); appendErr != nil {
		logger.Error(ctx, "failed to append audit entry",
			zap.String("event_type", entities.AuditEventContractValidation), zap.Error(appendErr))
	}
	return nil
}

func nonceKey(purpose, token string) string {
	return fmt.Sprintf("nonce:%s:%s", purpose, token)
}
