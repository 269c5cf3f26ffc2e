package entities

import (
	"time"

	"github.com/google/uuid"
)

// ContractConfig holds the marketplace NFT contract deployment settings.
// A single active row is expected.
type ContractConfig struct {
	ID                 uuid.UUID `json:"id"`
	NFTContractAddress string    `json:"nftContractAddress"`
	ChainID            string    `json:"chainId"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ContractOperationType represents a contract-level action kind
type ContractOperationType string

const (
	ContractOperationMint            ContractOperationType = "mint"
	ContractOperationRoyaltyRegister ContractOperationType = "royalty_register"
	ContractOperationTransfer        ContractOperationType = "transfer"
)

// ContractOperation represents a contract-level action submitted for
// validation. It is checked once and not persisted by the validator.
type ContractOperation struct {
	Type              string   `json:"type" binding:"required"`
	ContractHash      string   `json:"contractHash,omitempty"`
	RoyaltyPercentage *float64 `json:"royaltyPercentage,omitempty"`
	SecurityNonce     string   `json:"securityNonce,omitempty"`
}
