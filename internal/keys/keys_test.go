package keys

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

func TestGenerate(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	pubBytes, err := base58.Decode(kp.PublicKey.String())
	if err != nil {
		t.Fatalf("pubkey is not valid base58: %v", err)
	}
	if len(pubBytes) != 32 {
		t.Errorf("pubkey decodes to %d bytes, want 32", len(pubBytes))
	}

	secretBytes, err := base58.Decode(kp.Secret())
	if err != nil {
		t.Fatalf("secret is not valid base58: %v", err)
	}
	if len(secretBytes) != SecretKeyLength {
		t.Fatalf("secret decodes to %d bytes, want %d", len(secretBytes), SecretKeyLength)
	}

	// The second half of the secret is the public key.
	if !bytes.Equal(secretBytes[32:], pubBytes) {
		t.Error("secret key does not embed the public key")
	}
}

func TestParseSecretRoundTrip(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	parsed, err := ParseSecret(kp.Secret())
	if err != nil {
		t.Fatalf("ParseSecret failed on a freshly generated secret: %v", err)
	}
	if !parsed.PublicKey.Equals(kp.PublicKey) {
		t.Errorf("round-tripped pubkey = %s, want %s", parsed.PublicKey, kp.PublicKey)
	}
}

func TestParseSecretRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"not base58", "0OIl-not-base58"},
		{"too short", "abc"},
		{"wrong length", base58.Encode(make([]byte, 32))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSecret(tt.secret)
			if !errors.Is(err, ErrMalformedSecret) {
				t.Errorf("ParseSecret(%q) = %v, want ErrMalformedSecret", tt.secret, err)
			}
		})
	}
}

// offCurvePublicKey finds 32 bytes that decode to no point on the curve, by
// scanning the low byte of the y coordinate. Roughly half of all encodings
// are off-curve, so the scan terminates almost immediately.
func offCurvePublicKey(t *testing.T) []byte {
	t.Helper()
	candidate := make([]byte, 32)
	for i := 0; i < 256; i++ {
		candidate[0] = byte(i)
		if !solana.PublicKeyFromBytes(candidate).IsOnCurve() {
			return candidate
		}
	}
	t.Fatal("found no off-curve encoding")
	return nil
}

func TestParseSecretRejectsOffCurvePublicHalf(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Correct length, valid seed, but the embedded public half decodes to
	// no curve point.
	secret := make([]byte, SecretKeyLength)
	copy(secret, kp.PrivateKey[:32])
	copy(secret[32:], offCurvePublicKey(t))

	_, err = ParseSecret(base58.Encode(secret))
	if !errors.Is(err, ErrInvalidKeypair) {
		t.Errorf("ParseSecret = %v, want ErrInvalidKeypair", err)
	}
}

func TestSign(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	sig, err := kp.Sign([]byte("hello solana"))
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if sig.IsZero() {
		t.Error("signature is zero")
	}
}
