// Copyright (C) 2025 L{CORE} Project
//
// This file is part of lcore-go.
//
// lcore-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// lcore-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with lcore-go.  If not, see <https://www.gnu.org/licenses/>.

package identity

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	lcore "github.com/lcore-project/lcore-go"
	"github.com/lcore-project/lcore-go/pkg/codec"
)

// DID is a decentralized identifier string, e.g. "did:key:z...".
type DID string

// String returns the DID as a plain string.
func (d DID) String() string {
	return string(d)
}

const (
	// PrivateKeySize is the length of a raw secp256k1 private key scalar.
	PrivateKeySize = 32

	// PublicKeySize is the length of a SEC1-compressed secp256k1 public key.
	PublicKeySize = 33

	didKeyPrefix = "did:key:z"

	// minDIDBufferSize is the headroom required of caller-supplied DID
	// buffers before the exact encoded length is known.
	minDIDBufferSize = 64
)

// multicodecSecp256k1Pub is the multicodec for secp256k1 public keys,
// code 0xe7, varint-encoded.
var multicodecSecp256k1Pub = [2]byte{0xe7, 0x01}

// DIDFromPublicKey derives the did:key identifier for a 33-byte
// SEC1-compressed secp256k1 public key.
func DIDFromPublicKey(pubkey []byte) (DID, error) {
	if pubkey == nil {
		return "", fmt.Errorf("identity: nil public key: %w", lcore.ErrInvalidInput)
	}
	if len(pubkey) != PublicKeySize {
		return "", fmt.Errorf("identity: public key must be %d bytes, got %d: %w",
			PublicKeySize, len(pubkey), lcore.ErrInvalidInput)
	}

	tagged := make([]byte, 0, len(multicodecSecp256k1Pub)+PublicKeySize)
	tagged = append(tagged, multicodecSecp256k1Pub[:]...)
	tagged = append(tagged, pubkey...)

	encoded, err := codec.Base58EncodeToString(tagged)
	if err != nil {
		return "", fmt.Errorf("identity: encoding public key: %w", err)
	}
	return DID(didKeyPrefix + encoded), nil
}

// DIDFromPrivateKey derives the did:key identifier for a 32-byte secp256k1
// private key by computing the compressed public key first.
//
// The result is deterministic: repeated calls with the same key produce the
// identical DID.
func DIDFromPrivateKey(privkey []byte) (DID, error) {
	pub, err := PublicKeyFromPrivateKey(privkey)
	if err != nil {
		return "", err
	}
	return DIDFromPublicKey(pub)
}

// PublicKeyFromPrivateKey computes the 33-byte SEC1-compressed public key
// for a 32-byte secp256k1 private key scalar.
//
// Fails with lcore.ErrCrypto when the scalar is not a valid private key
// (zero, or not below the curve order).
func PublicKeyFromPrivateKey(privkey []byte) ([]byte, error) {
	priv, err := ParsePrivateKey(privkey)
	if err != nil {
		return nil, err
	}
	return priv.PubKey().SerializeCompressed(), nil
}

// EncodeDID writes the did:key identifier for a compressed public key into a
// caller-supplied buffer and returns the number of bytes written.
//
// dst must be at least 64 bytes so the call can be rejected before the exact
// encoded length is known; 128 bytes is the recommended capacity. Nothing is
// written on failure.
func EncodeDID(dst []byte, pubkey []byte) (int, error) {
	if len(dst) < minDIDBufferSize {
		return 0, fmt.Errorf("identity: DID buffer must be at least %d bytes, got %d: %w",
			minDIDBufferSize, len(dst), lcore.ErrBufferTooSmall)
	}

	did, err := DIDFromPublicKey(pubkey)
	if err != nil {
		return 0, err
	}
	if len(did) > len(dst) {
		return 0, fmt.Errorf("identity: DID needs %d bytes, have %d: %w",
			len(did), len(dst), lcore.ErrBufferTooSmall)
	}
	return copy(dst, did), nil
}

// EncodeDIDFromPrivateKey is the caller-supplied-buffer variant of
// DIDFromPrivateKey. The same capacity rules as EncodeDID apply; the buffer
// check runs before any key derivation, so an undersized dst never reaches
// the curve primitives.
func EncodeDIDFromPrivateKey(dst []byte, privkey []byte) (int, error) {
	if len(dst) < minDIDBufferSize {
		return 0, fmt.Errorf("identity: DID buffer must be at least %d bytes, got %d: %w",
			minDIDBufferSize, len(dst), lcore.ErrBufferTooSmall)
	}

	pub, err := PublicKeyFromPrivateKey(privkey)
	if err != nil {
		return 0, err
	}
	return EncodeDID(dst, pub)
}

// ParsePrivateKey imports a raw 32-byte scalar as a secp256k1 private key,
// rejecting values outside the valid range (zero, or not below the curve
// order) with lcore.ErrCrypto.
func ParsePrivateKey(privkey []byte) (*secp256k1.PrivateKey, error) {
	if privkey == nil {
		return nil, fmt.Errorf("identity: nil private key: %w", lcore.ErrInvalidInput)
	}
	if len(privkey) != PrivateKeySize {
		return nil, fmt.Errorf("identity: private key must be %d bytes, got %d: %w",
			PrivateKeySize, len(privkey), lcore.ErrInvalidInput)
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(privkey); overflow {
		return nil, fmt.Errorf("identity: private key scalar exceeds curve order: %w", lcore.ErrCrypto)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("identity: private key scalar is zero: %w", lcore.ErrCrypto)
	}

	// NewPrivateKey copies the scalar; clear the local before returning.
	priv := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()
	return priv, nil
}
