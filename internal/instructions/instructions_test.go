package instructions

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SPL token program instruction tags.
const (
	tagInitializeMint  = 0
	tagMintTo          = 7
	tagTransferChecked = 12
)

func newPubkey(t *testing.T) solana.PublicKey {
	t.Helper()
	priv, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return priv.PublicKey()
}

func TestTransferSOL(t *testing.T) {
	from := newPubkey(t)
	to := newPubkey(t)

	built, err := TransferSOL(from, to, 1000)
	require.NoError(t, err)

	assert.Equal(t, solana.SystemProgramID, built.ProgramID)

	require.Len(t, built.Accounts, 2)
	assert.Equal(t, from, built.Accounts[0].PublicKey)
	assert.True(t, built.Accounts[0].IsSigner)
	assert.True(t, built.Accounts[0].IsWritable)
	assert.Equal(t, to, built.Accounts[1].PublicKey)
	assert.False(t, built.Accounts[1].IsSigner)
	assert.True(t, built.Accounts[1].IsWritable)

	// System program encodes a uint32 instruction index (2 = Transfer)
	// followed by the lamport amount.
	require.Len(t, built.Data, 12)
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(built.Data[:4]))
	assert.Equal(t, uint64(1000), binary.LittleEndian.Uint64(built.Data[4:]))
}

func TestInitializeMint(t *testing.T) {
	mint := newPubkey(t)
	authority := newPubkey(t)

	built, err := InitializeMint(mint, authority, 9)
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID, built.ProgramID)

	require.Len(t, built.Accounts, 2)
	assert.Equal(t, mint, built.Accounts[0].PublicKey)
	assert.False(t, built.Accounts[0].IsSigner)
	assert.True(t, built.Accounts[0].IsWritable)
	assert.Equal(t, solana.SysVarRentPubkey, built.Accounts[1].PublicKey)

	require.NotEmpty(t, built.Data)
	assert.EqualValues(t, tagInitializeMint, built.Data[0])
	assert.EqualValues(t, 9, built.Data[1])
	// The mint authority rides in the payload, not the account list.
	assert.Equal(t, authority.Bytes(), built.Data[2:34])
}

func TestMintTo(t *testing.T) {
	mint := newPubkey(t)
	destination := newPubkey(t)
	authority := newPubkey(t)

	built, err := MintTo(mint, destination, authority, 42_000_000)
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID, built.ProgramID)

	require.Len(t, built.Accounts, 3)
	assert.Equal(t, mint, built.Accounts[0].PublicKey)
	assert.True(t, built.Accounts[0].IsWritable)
	assert.Equal(t, destination, built.Accounts[1].PublicKey)
	assert.True(t, built.Accounts[1].IsWritable)
	assert.Equal(t, authority, built.Accounts[2].PublicKey)
	assert.True(t, built.Accounts[2].IsSigner)

	require.Len(t, built.Data, 9)
	assert.EqualValues(t, tagMintTo, built.Data[0])
	assert.Equal(t, uint64(42_000_000), binary.LittleEndian.Uint64(built.Data[1:]))
}

func TestTransferToken(t *testing.T) {
	owner := newPubkey(t)
	mint := newPubkey(t)
	destination := newPubkey(t)

	built, err := TransferToken(owner, mint, destination, 1_500_000)
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID, built.ProgramID)

	// transfer-checked: source, mint, destination, authority. The owner is
	// both source and authority, so it appears twice.
	require.Len(t, built.Accounts, 4)
	assert.Equal(t, owner, built.Accounts[0].PublicKey)
	assert.False(t, built.Accounts[0].IsSigner)
	assert.Equal(t, mint, built.Accounts[1].PublicKey)
	assert.Equal(t, destination, built.Accounts[2].PublicKey)
	assert.Equal(t, owner, built.Accounts[3].PublicKey)
	assert.True(t, built.Accounts[3].IsSigner)

	require.Len(t, built.Data, 10)
	assert.EqualValues(t, tagTransferChecked, built.Data[0])
	assert.Equal(t, uint64(1_500_000), binary.LittleEndian.Uint64(built.Data[1:9]))
	assert.EqualValues(t, TransferTokenDecimals, built.Data[9])
}
