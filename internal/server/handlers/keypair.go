package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/solana-api/internal/keys"
)

// KeypairData carries a freshly generated keypair: the public key in base58
// and the full 64-byte private key (seed plus public half) in base58.
type KeypairData struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

// GenerateKeypair handles POST /keypair. It takes no input and has no
// documented failure path.
func GenerateKeypair(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kp, err := keys.Generate()
		if err != nil {
			logger.Error("keypair generation failed", zap.Error(err))
			respond(w, logger, false, KeypairData{})
			return
		}

		respond(w, logger, true, KeypairData{
			Pubkey: kp.String(),
			Secret: kp.Secret(),
		})
	}
}
