package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/solana-api/internal/instructions"
)

type CreateTokenRequest struct {
	MintAuthority string `json:"mintAuthority"`
	Mint          string `json:"mint"`
	Decimals      uint8  `json:"decimals"`
}

type MintTokenRequest struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Authority   string `json:"authority"`
	Amount      uint64 `json:"amount"`
}

// AccountMeta is the verbose per-account shape used by the token endpoints.
type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// TokenInstructionData is returned by /token/create and /token/mint. On
// failure instruction_data carries the reason as plain text, not base64.
type TokenInstructionData struct {
	ProgramID       string        `json:"program_id"`
	Accounts        []AccountMeta `json:"accounts"`
	InstructionData string        `json:"instruction_data"`
}

func tokenInstructionData(built *instructions.Built) TokenInstructionData {
	accounts := make([]AccountMeta, 0, len(built.Accounts))
	for _, meta := range built.Accounts {
		accounts = append(accounts, AccountMeta{
			Pubkey:     meta.PublicKey.String(),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	return TokenInstructionData{
		ProgramID:       built.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(built.Data),
	}
}

func tokenFailure(w http.ResponseWriter, logger *zap.Logger, reason string) {
	respond(w, logger, false, TokenInstructionData{
		Accounts:        []AccountMeta{},
		InstructionData: reason,
	})
}

// CreateToken handles POST /token/create: an initialize-mint instruction
// with no freeze authority.
func CreateToken(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTokenRequest
		if err := decodeBody(r, &req); err != nil {
			tokenFailure(w, logger, reasonBadBody)
			return
		}

		mint, err := solana.PublicKeyFromBase58(req.Mint)
		if err != nil {
			tokenFailure(w, logger, "Invalid mint pubkey")
			return
		}

		mintAuthority, err := solana.PublicKeyFromBase58(req.MintAuthority)
		if err != nil {
			tokenFailure(w, logger, "Invalid mintAuthority pubkey")
			return
		}

		built, err := instructions.InitializeMint(mint, mintAuthority, req.Decimals)
		if err != nil {
			tokenFailure(w, logger, err.Error())
			return
		}

		respond(w, logger, true, tokenInstructionData(built))
	}
}

// MintToken handles POST /token/mint: a mint-to instruction with a single
// signing authority and no multisig signers.
func MintToken(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MintTokenRequest
		if err := decodeBody(r, &req); err != nil {
			tokenFailure(w, logger, reasonBadBody)
			return
		}

		mint, err := solana.PublicKeyFromBase58(req.Mint)
		if err != nil {
			tokenFailure(w, logger, "Invalid mint pubkey")
			return
		}

		destination, err := solana.PublicKeyFromBase58(req.Destination)
		if err != nil {
			tokenFailure(w, logger, "Invalid destination pubkey")
			return
		}

		authority, err := solana.PublicKeyFromBase58(req.Authority)
		if err != nil {
			tokenFailure(w, logger, "Invalid authority pubkey")
			return
		}

		built, err := instructions.MintTo(mint, destination, authority, req.Amount)
		if err != nil {
			tokenFailure(w, logger, err.Error())
			return
		}

		respond(w, logger, true, tokenInstructionData(built))
	}
}
