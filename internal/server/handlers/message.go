package handlers

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/solana-api/internal/keys"
	"github.com/rovshanmuradov/solana-api/internal/sigverify"
)

type SignMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

// SignMessageData echoes the signed message on success. On failure the
// message field carries the reason instead and the other fields stay empty.
type SignMessageData struct {
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
	Message   string `json:"message"`
}

type VerifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

// VerifyMessageData echoes the pubkey on every path; the message is only
// echoed when the inputs were well-formed.
type VerifyMessageData struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

const (
	reasonMalformedSecret = "Invalid or malformed secret key (expected 64-byte base58)"
	reasonBadKeypair      = "Failed to parse secret key into Keypair"
	reasonSignFailed      = "Failed to sign message"
	reasonBadPubkeyBase58 = "Invalid base58 pubkey"
	reasonBadPubkey       = "Failed to parse pubkey"
	reasonBadSigBase64    = "Invalid base64 signature"
	reasonBadSignature    = "Failed to parse signature"
)

// SignMessage handles POST /message/sign.
func SignMessage(logger *zap.Logger) http.HandlerFunc {
	signFailure := func(w http.ResponseWriter, reason string) {
		respond(w, logger, false, SignMessageData{Message: reason})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req SignMessageRequest
		if err := decodeBody(r, &req); err != nil {
			signFailure(w, reasonBadBody)
			return
		}

		kp, err := keys.ParseSecret(req.Secret)
		if err != nil {
			if errors.Is(err, keys.ErrMalformedSecret) {
				signFailure(w, reasonMalformedSecret)
			} else {
				signFailure(w, reasonBadKeypair)
			}
			return
		}

		sig, err := kp.Sign([]byte(req.Message))
		if err != nil {
			signFailure(w, reasonSignFailed)
			return
		}

		respond(w, logger, true, SignMessageData{
			Signature: base64.StdEncoding.EncodeToString(sig[:]),
			PublicKey: kp.PublicKey.String(),
			Message:   req.Message,
		})
	}
}

// VerifyMessage handles POST /message/verify. A signature that parses but
// does not verify is success=true, valid=false; only undecodable input is a
// logical failure.
func VerifyMessage(logger *zap.Logger) http.HandlerFunc {
	verifyFailure := func(w http.ResponseWriter, reason, pubkey string) {
		respond(w, logger, false, VerifyMessageData{Message: reason, Pubkey: pubkey})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyMessageRequest
		if err := decodeBody(r, &req); err != nil {
			verifyFailure(w, reasonBadBody, req.Pubkey)
			return
		}

		pubBytes, err := base58.Decode(req.Pubkey)
		if err != nil {
			verifyFailure(w, reasonBadPubkeyBase58, req.Pubkey)
			return
		}
		if len(pubBytes) != ed25519.PublicKeySize || !solana.PublicKeyFromBytes(pubBytes).IsOnCurve() {
			verifyFailure(w, reasonBadPubkey, req.Pubkey)
			return
		}

		sigBytes, err := base64.StdEncoding.DecodeString(req.Signature)
		if err != nil {
			verifyFailure(w, reasonBadSigBase64, req.Pubkey)
			return
		}
		// A scalar with any of the top three bits of its final byte set can
		// never be canonical, so such input fails at the parse stage rather
		// than reporting valid=false.
		if len(sigBytes) != ed25519.SignatureSize || sigBytes[63]&0xE0 != 0 {
			verifyFailure(w, reasonBadSignature, req.Pubkey)
			return
		}

		valid := sigverify.Verify(ed25519.PublicKey(pubBytes), []byte(req.Message), sigBytes)

		respond(w, logger, true, VerifyMessageData{
			Valid:   valid,
			Message: req.Message,
			Pubkey:  req.Pubkey,
		})
	}
}
