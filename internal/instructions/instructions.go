// Package instructions builds SPL token and system-program instructions
// locally, without touching an RPC node. Results carry everything a caller
// needs to assemble a transaction elsewhere: program id, account metas and
// the raw instruction payload.
package instructions

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// TransferTokenDecimals is the decimal precision assumed by TransferToken.
// The real precision lives in the mint account on chain; looking it up would
// require RPC access this service does not have.
const TransferTokenDecimals uint8 = 6

// Built is a constructed instruction, flattened out of the solana-go
// instruction interface so callers never deal with deferred Data errors.
type Built struct {
	ProgramID solana.PublicKey
	Accounts  []*solana.AccountMeta
	Data      []byte
}

func flatten(inst solana.Instruction) (*Built, error) {
	data, err := inst.Data()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize instruction data: %w", err)
	}
	return &Built{
		ProgramID: inst.ProgramID(),
		Accounts:  inst.Accounts(),
		Data:      data,
	}, nil
}

// InitializeMint builds an SPL initialize-mint instruction with the given
// authority and decimal precision. No freeze authority is set.
func InitializeMint(mint, mintAuthority solana.PublicKey, decimals uint8) (*Built, error) {
	inst, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(mintAuthority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return flatten(inst)
}

// MintTo builds an SPL mint-to instruction. The authority signs alone, with
// no additional multisig signers.
func MintTo(mint, destination, authority solana.PublicKey, amount uint64) (*Built, error) {
	inst, err := token.NewMintToInstruction(
		amount,
		mint,
		destination,
		authority,
		[]solana.PublicKey{},
	).ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return flatten(inst)
}

// TransferSOL builds a native system-program lamport transfer.
func TransferSOL(from, to solana.PublicKey, lamports uint64) (*Built, error) {
	inst, err := system.NewTransferInstruction(
		lamports,
		from,
		to,
	).ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return flatten(inst)
}

// TransferToken builds an SPL transfer-checked instruction. The owner acts as
// both the source token account and the signing authority; precision is fixed
// at TransferTokenDecimals.
func TransferToken(owner, mint, destination solana.PublicKey, amount uint64) (*Built, error) {
	inst, err := token.NewTransferCheckedInstruction(
		amount,
		TransferTokenDecimals,
		owner,
		mint,
		destination,
		owner,
		[]solana.PublicKey{},
	).ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return flatten(inst)
}
