package jws

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	lcore "github.com/lcore-project/lcore-go"
	"github.com/lcore-project/lcore-go/pkg/codec"
	"github.com/lcore-project/lcore-go/pkg/identity"
)

// Header is the fixed ES256K protected header. It is emitted with no
// whitespace so the header segment is byte-identical across all envelopes.
const Header = `{"alg":"ES256K","typ":"JWS"}`

// SignatureSize is the raw signature length: r and s, 32 bytes each.
const SignatureSize = 64

// ES256KSigner implements Signer with ECDSA over secp256k1 and SHA-256.
type ES256KSigner struct{}

// NewES256KSigner creates a new ES256KSigner.
func NewES256KSigner() *ES256KSigner {
	return &ES256KSigner{}
}

var _ Signer = (*ES256KSigner)(nil)

// Sign implements Signer.
func (s *ES256KSigner) Sign(payload []byte, privkey []byte) (string, error) {
	return Sign(payload, privkey)
}

// Sign builds the compact ES256K JWS for payload:
//
//  1. base64url-encode the fixed header and the payload
//  2. hash "header.payload" with SHA-256
//  3. sign the digest with ECDSA over secp256k1
//  4. normalize the signature to low-S form
//  5. serialize as 64 raw bytes r‖s, base64url-encode, and join the three
//     segments with dots
//
// The payload is opaque to this function. Each call is independent: no state
// survives between calls, so Sign is safe for concurrent use.
func Sign(payload []byte, privkey []byte) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("jws: nil payload: %w", lcore.ErrInvalidInput)
	}

	priv, err := identity.ParsePrivateKey(privkey)
	if err != nil {
		return "", fmt.Errorf("jws: importing key: %w", err)
	}

	headerB64, err := codec.Base64URLEncodeToString([]byte(Header))
	if err != nil {
		return "", fmt.Errorf("jws: encoding header: %w", err)
	}
	payloadB64, err := codec.Base64URLEncodeToString(payload)
	if err != nil {
		return "", fmt.Errorf("jws: encoding payload: %w", err)
	}

	signingInput := headerB64 + "." + payloadB64
	digest := sha256.Sum256([]byte(signingInput))

	sig := ecdsa.Sign(priv, digest[:])
	r := sig.R()
	s := sig.S()
	normalizeLowS(&s)

	var raw [SignatureSize]byte
	r.PutBytesUnchecked(raw[:32])
	s.PutBytesUnchecked(raw[32:])

	sigB64, err := codec.Base64URLEncodeToString(raw[:])
	if err != nil {
		return "", fmt.Errorf("jws: encoding signature: %w", err)
	}
	return signingInput + "." + sigB64, nil
}

// normalizeLowS replaces s with n-s when s is above half the curve order,
// leaving exactly one canonical signature form per (message, key) pair.
// Reports whether s was flipped.
//
// This runs after every sign operation. The primitive already emits low-S
// signatures, but canonical form is an interoperability requirement here, not
// an implementation detail of the current primitive.
func normalizeLowS(s *secp256k1.ModNScalar) bool {
	if s.IsOverHalfOrder() {
		s.Negate()
		return true
	}
	return false
}
