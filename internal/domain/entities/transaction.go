package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TransactionType represents the marketplace money movement kind
type TransactionType string

const (
	TransactionTypeTransfer  TransactionType = "transfer"
	TransactionTypeTokenSale TransactionType = "token_sale"
	TransactionTypePurchase  TransactionType = "purchase"
)

// TransactionStatus represents transaction status
type TransactionStatus string

const (
	TransactionStatusAccepted TransactionStatus = "ACCEPTED"
	TransactionStatusRejected TransactionStatus = "REJECTED"
)

// Transaction represents an accepted marketplace money movement. Immutable
// after acceptance; there is no update path.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	ActorID       uuid.UUID         `json:"actorId"`
	Type          TransactionType   `json:"type"`
	CurrencyType  string            `json:"currencyType"`
	Amount        float64           `json:"amount"`
	TokenID       *uuid.UUID        `json:"tokenId,omitempty"`
	WalletAddress null.String       `json:"walletAddress,omitempty"`
	Status        TransactionStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// CreateTransactionInput represents input for creating a transaction.
// CurrencyType is advisory only: the platform currency is enforced
// regardless of the supplied value.
type CreateTransactionInput struct {
	Type          string  `json:"type" binding:"required"`
	CurrencyType  string  `json:"currencyType,omitempty"`
	Amount        float64 `json:"amount" binding:"required"`
	Timestamp     int64   `json:"timestamp" binding:"required"`
	TokenID       string  `json:"tokenId,omitempty"`
	WalletAddress string  `json:"walletAddress,omitempty"`
	SecurityNonce string  `json:"securityNonce,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// SaleData represents input for validating an artwork sale.
type SaleData struct {
	Amount          float64 `json:"amount" binding:"required"`
	CurrencyType    string  `json:"currencyType,omitempty"`
	TransactionMode string  `json:"transactionMode,omitempty"`
	Description     string  `json:"description,omitempty"`
}

const (
	// TransactionModeOnchain routes the sale through the NFT contract, which
	// additionally requires royalty enforceability on chain.
	TransactionModeOnchain  = "onchain"
	TransactionModeOffchain = "offchain"
)
