package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/solana-api/internal/instructions"
)

type SendSolRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lamports uint64 `json:"lamports"`
}

type SendTokenRequest struct {
	Destination string `json:"destination"`
	Mint        string `json:"mint"`
	Owner       string `json:"owner"`
	Amount      uint64 `json:"amount"`
}

// SolInstructionData is returned by /send/sol. Accounts are bare pubkey
// strings, a narrower shape than the token endpoints. On failure
// instruction_data carries the reason base64-encoded.
type SolInstructionData struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

// CompactAccountMeta is the per-account shape used by /send/token: pubkey
// and signer flag only, no writable flag.
type CompactAccountMeta struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

// CompactInstructionData is returned by /send/token. Failure encoding
// mirrors /send/sol: the reason goes into instruction_data as base64.
type CompactInstructionData struct {
	ProgramID       string               `json:"program_id"`
	Accounts        []CompactAccountMeta `json:"accounts"`
	InstructionData string               `json:"instruction_data"`
}

func encodeReason(reason string) string {
	return base64.StdEncoding.EncodeToString([]byte(reason))
}

// SendSol handles POST /send/sol: a native system-program lamport transfer.
func SendSol(logger *zap.Logger) http.HandlerFunc {
	solFailure := func(w http.ResponseWriter, reason string) {
		respond(w, logger, false, SolInstructionData{
			Accounts:        []string{},
			InstructionData: encodeReason(reason),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req SendSolRequest
		if err := decodeBody(r, &req); err != nil {
			solFailure(w, reasonBadBody)
			return
		}

		from, err := solana.PublicKeyFromBase58(req.From)
		if err != nil {
			solFailure(w, "Invalid 'from' pubkey")
			return
		}

		to, err := solana.PublicKeyFromBase58(req.To)
		if err != nil {
			solFailure(w, "Invalid 'to' pubkey")
			return
		}

		built, err := instructions.TransferSOL(from, to, req.Lamports)
		if err != nil {
			solFailure(w, err.Error())
			return
		}

		accounts := make([]string, 0, len(built.Accounts))
		for _, meta := range built.Accounts {
			accounts = append(accounts, meta.PublicKey.String())
		}

		respond(w, logger, true, SolInstructionData{
			ProgramID:       built.ProgramID.String(),
			Accounts:        accounts,
			InstructionData: base64.StdEncoding.EncodeToString(built.Data),
		})
	}
}

// SendToken handles POST /send/token: a transfer-checked instruction where
// the owner is both the source account and the signing authority.
func SendToken(logger *zap.Logger) http.HandlerFunc {
	tokenFailure := func(w http.ResponseWriter, reason string) {
		respond(w, logger, false, CompactInstructionData{
			Accounts:        []CompactAccountMeta{},
			InstructionData: encodeReason(reason),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req SendTokenRequest
		if err := decodeBody(r, &req); err != nil {
			tokenFailure(w, reasonBadBody)
			return
		}

		destination, err := solana.PublicKeyFromBase58(req.Destination)
		if err != nil {
			tokenFailure(w, "Invalid destination pubkey")
			return
		}

		mint, err := solana.PublicKeyFromBase58(req.Mint)
		if err != nil {
			tokenFailure(w, "Invalid mint pubkey")
			return
		}

		owner, err := solana.PublicKeyFromBase58(req.Owner)
		if err != nil {
			tokenFailure(w, "Invalid owner pubkey")
			return
		}

		built, err := instructions.TransferToken(owner, mint, destination, req.Amount)
		if err != nil {
			tokenFailure(w, err.Error())
			return
		}

		accounts := make([]CompactAccountMeta, 0, len(built.Accounts))
		for _, meta := range built.Accounts {
			accounts = append(accounts, CompactAccountMeta{
				Pubkey:   meta.PublicKey.String(),
				IsSigner: meta.IsSigner,
			})
		}

		respond(w, logger, true, CompactInstructionData{
			ProgramID:       built.ProgramID.String(),
			Accounts:        accounts,
			InstructionData: base64.StdEncoding.EncodeToString(built.Data),
		})
	}
}
