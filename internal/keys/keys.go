// ==================================
// File: internal/keys/keys.go
// ==================================
package keys

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// SecretKeyLength is the raw length of a Solana secret key:
// 32-byte ed25519 seed followed by the 32-byte public key.
const SecretKeyLength = 64

var (
	// ErrMalformedSecret means the secret did not base58-decode to 64 bytes.
	ErrMalformedSecret = errors.New("secret key must be 64 bytes of base58")
	// ErrInvalidKeypair means the decoded bytes do not form a usable keypair.
	ErrInvalidKeypair = errors.New("secret key bytes do not form a valid keypair")
)

// Keypair holds a Solana signing keypair.
type Keypair struct {
	PrivateKey solana.PrivateKey
	PublicKey  solana.PublicKey
}

// Generate creates a fresh keypair from a cryptographically secure source.
func Generate() (*Keypair, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, err
	}
	return &Keypair{
		PrivateKey: priv,
		PublicKey:  priv.PublicKey(),
	}, nil
}

// ParseSecret rebuilds a keypair from a base58-encoded 64-byte secret key.
// The embedded public key half must be a valid curve point.
func ParseSecret(secret string) (*Keypair, error) {
	raw, err := base58.Decode(secret)
	if err != nil || len(raw) != SecretKeyLength {
		return nil, ErrMalformedSecret
	}

	priv := solana.PrivateKey(raw)
	pub := priv.PublicKey()
	if !pub.IsOnCurve() {
		return nil, ErrInvalidKeypair
	}

	return &Keypair{PrivateKey: priv, PublicKey: pub}, nil
}

// Sign signs an arbitrary payload with the keypair's private key.
func (kp *Keypair) Sign(payload []byte) (solana.Signature, error) {
	return kp.PrivateKey.Sign(payload)
}

// Secret returns the base58 encoding of the full 64-byte private key.
func (kp *Keypair) Secret() string {
	return base58.Encode(kp.PrivateKey)
}

// String returns the keypair's public key in base58.
func (kp *Keypair) String() string {
	return kp.PublicKey.String()
}
