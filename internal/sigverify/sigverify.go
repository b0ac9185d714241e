// Package sigverify implements strict ed25519 signature verification.
//
// The stdlib crypto/ed25519 verifier accepts small-order components, which
// makes signatures malleable. Instruction payloads signed by this service are
// checked with the stricter rules most Solana tooling applies: canonical
// scalar, canonical R encoding, and no small-order points.
package sigverify

import (
	"crypto/ed25519"
	"crypto/sha512"
	"crypto/subtle"

	"filippo.io/edwards25519"
)

// Verify reports whether sig is a valid strict ed25519 signature of msg
// under pub. It never returns an error: any undecodable or non-canonical
// input is simply an invalid signature.
func Verify(pub ed25519.PublicKey, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}

	A, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return false
	}
	R, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return false
	}

	// Small-order A or R admits signature forgeries across equivalent keys.
	identity := edwards25519.NewIdentityPoint()
	if new(edwards25519.Point).MultByCofactor(A).Equal(identity) == 1 {
		return false
	}
	if new(edwards25519.Point).MultByCofactor(R).Equal(identity) == 1 {
		return false
	}

	// Non-canonical s (s >= group order) is the classic malleability vector.
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(pub)
	h.Write(msg)
	var digest [64]byte
	k, err := new(edwards25519.Scalar).SetUniformBytes(h.Sum(digest[:0]))
	if err != nil {
		return false
	}

	// Check [s]B = R + [k]A by recomputing R as [s]B - [k]A. Comparing the
	// encodings rather than the points also rejects non-canonical R.
	minusA := new(edwards25519.Point).Negate(A)
	expectedR := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, s)
	return subtle.ConstantTimeCompare(expectedR.Bytes(), sig[:32]) == 1
}
