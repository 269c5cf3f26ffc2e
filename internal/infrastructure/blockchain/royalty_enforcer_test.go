package blockchain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyEnforceable(t *testing.T) {
	enforcer := NewRoyaltyEnforcer()
	ctx := context.Background()

	err := enforcer.VerifyEnforceable(ctx, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "TOLAabcdefghijklmnopqrstuvwxyz0123456789")
	require.NoError(t, err)

	err = enforcer.VerifyEnforceable(ctx, "not-an-address", "TOLAabcdefghijklmnopqrstuvwxyz0123456789")
	require.Error(t, err)

	err = enforcer.VerifyEnforceable(ctx, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "")
	require.Error(t, err)
}

func TestIsContractHash(t *testing.T) {
	valid := "0x" + strings.Repeat("ab12cd34", 8)
	require.True(t, IsContractHash(valid))
	require.True(t, IsContractHash("0x"+strings.Repeat("AB12CD34", 8)))

	require.False(t, IsContractHash(strings.Repeat("ab12cd34", 8)))       // no prefix
	require.False(t, IsContractHash("0x"+strings.Repeat("ab12cd34", 7)))  // too short
	require.False(t, IsContractHash("0x"+strings.Repeat("zz12cd34", 8)))  // non-hex
	require.False(t, IsContractHash("0x"+strings.Repeat("ab12cd34", 8)+"ff")) // too long
}
