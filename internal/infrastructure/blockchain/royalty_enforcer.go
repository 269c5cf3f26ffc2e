package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// RoyaltyEnforcer verifies that the deployed NFT contract can enforce the
// configured royalty split for a token before an on-chain sale proceeds.
type RoyaltyEnforcer interface {
	VerifyEnforceable(ctx context.Context, contractAddress, creatorWallet string) error
}

type evmRoyaltyEnforcer struct{}

// NewRoyaltyEnforcer creates the EVM-backed royalty enforcer.
func NewRoyaltyEnforcer() RoyaltyEnforcer {
	return &evmRoyaltyEnforcer{}
}

// VerifyEnforceable checks the contract address shape and the presence of a
// creator payout wallet. The royalty-info read against the deployed contract
// is not performed here; preconditions alone gate the sale.
func (e *evmRoyaltyEnforcer) VerifyEnforceable(ctx context.Context, contractAddress, creatorWallet string) error {
	if !common.IsHexAddress(contractAddress) {
		return fmt.Errorf("invalid contract address: %s", contractAddress)
	}
	if creatorWallet == "" {
		return fmt.Errorf("creator wallet address is empty")
	}
	return nil
}

// IsContractHash reports whether s is a 0x-prefixed 32-byte hex hash.
func IsContractHash(s string) bool {
	if len(s) != 66 || s[:2] != "0x" {
		return false
	}
	for _, c := range s[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
