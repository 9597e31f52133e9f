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

package jws

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lcore "github.com/lcore-project/lcore-go"
	"github.com/lcore-project/lcore-go/pkg/codec"
	"github.com/lcore-project/lcore-go/pkg/identity"
)

// testPrivkey is the 32 ascending bytes 0x01..0x20.
func testPrivkey() []byte {
	key := make([]byte, identity.PrivateKeySize)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return key
}

func TestSign_ThreeSegments(t *testing.T) {
	envelope, err := Sign([]byte(`{"test":true}`), testPrivkey())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(envelope, "."))
	assert.Len(t, strings.Split(envelope, "."), 3)
}

func TestSign_HeaderSegmentStable(t *testing.T) {
	payload := []byte(`{"test":true}`)

	jws1, err := Sign(payload, testPrivkey())
	require.NoError(t, err)
	jws2, err := Sign(payload, testPrivkey())
	require.NoError(t, err)

	// The header is a process-wide constant, so the first segment of every
	// envelope is byte-identical even when the signature segment differs.
	header1 := jws1[:strings.Index(jws1, ".")]
	header2 := jws2[:strings.Index(jws2, ".")]
	assert.Equal(t, header1, header2)
	assert.Len(t, header1, codec.Base64URLLen(len(Header)))

	decoded, err := base64.RawURLEncoding.DecodeString(header1)
	require.NoError(t, err)
	assert.Equal(t, Header, string(decoded))
}

func TestSign_PayloadSegmentVerbatim(t *testing.T) {
	payload := []byte(`{"temperature": 23.4,  "unit":"C"}`)

	envelope, err := Sign(payload, testPrivkey())
	require.NoError(t, err)

	segments := strings.Split(envelope, ".")
	decoded, err := base64.RawURLEncoding.DecodeString(segments[1])
	require.NoError(t, err)
	assert.Equal(t, payload, decoded, "payload must be embedded opaquely, whitespace included")
}

func TestSign_DistinctPayloadsDistinctEnvelopes(t *testing.T) {
	jws1, err := Sign([]byte(`{"a":1}`), testPrivkey())
	require.NoError(t, err)
	jws2, err := Sign([]byte(`{"b":2}`), testPrivkey())
	require.NoError(t, err)
	assert.NotEqual(t, jws1, jws2)
}

func TestSign_SignatureVerifies(t *testing.T) {
	payload := []byte(`{"temperature":23.4}`)

	envelope, err := Sign(payload, testPrivkey())
	require.NoError(t, err)

	segments := strings.Split(envelope, ".")
	require.Len(t, segments, 3)

	rawSig, err := base64.RawURLEncoding.DecodeString(segments[2])
	require.NoError(t, err)
	require.Len(t, rawSig, SignatureSize)

	var r, s secp256k1.ModNScalar
	require.False(t, r.SetByteSlice(rawSig[:32]))
	require.False(t, s.SetByteSlice(rawSig[32:]))
	assert.False(t, s.IsOverHalfOrder(), "signature must be low-S")

	priv, err := identity.ParsePrivateKey(testPrivkey())
	require.NoError(t, err)
	digest := sha256.Sum256([]byte(segments[0] + "." + segments[1]))
	assert.True(t, ecdsa.NewSignature(&r, &s).Verify(digest[:], priv.PubKey()))
}

func TestSign_RandomPayloads(t *testing.T) {
	faker := gofakeit.New(256)

	for i := 0; i < 16; i++ {
		payload, err := json.Marshal(map[string]any{
			"device":      faker.AppName(),
			"temperature": faker.Float64Range(-40, 85),
			"city":        faker.City(),
			"count":       faker.Number(0, 1<<20),
		})
		require.NoError(t, err)

		envelope, err := Sign(payload, testPrivkey())
		require.NoError(t, err)

		segments := strings.Split(envelope, ".")
		require.Len(t, segments, 3)

		decoded, err := base64.RawURLEncoding.DecodeString(segments[1])
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestSign_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		privkey []byte
	}{
		{"nil payload", nil, testPrivkey()},
		{"nil key", []byte(`{"test":true}`), nil},
		{"short key", []byte(`{"test":true}`), make([]byte, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := Sign(tt.payload, tt.privkey)
			assert.ErrorIs(t, err, lcore.ErrInvalidInput)
			assert.Empty(t, envelope)
		})
	}
}

func TestSign_InvalidScalar(t *testing.T) {
	envelope, err := Sign([]byte(`{"test":true}`), make([]byte, identity.PrivateKeySize))
	assert.ErrorIs(t, err, lcore.ErrCrypto)
	assert.Empty(t, envelope)
}

func TestNormalizeLowS(t *testing.T) {
	// n-1 is above half the curve order; its normalization is 1.
	var s secp256k1.ModNScalar
	s.SetInt(1)
	s.Negate()
	require.True(t, s.IsOverHalfOrder())

	flipped := normalizeLowS(&s)
	assert.True(t, flipped)
	assert.False(t, s.IsOverHalfOrder())

	var one secp256k1.ModNScalar
	one.SetInt(1)
	assert.True(t, s.Equals(&one))

	// Already-low values pass through untouched.
	flipped = normalizeLowS(&s)
	assert.False(t, flipped)
	assert.True(t, s.Equals(&one))
}

func TestES256KSigner_ImplementsSigner(t *testing.T) {
	var signer Signer = NewES256KSigner()
	envelope, err := signer.Sign([]byte(`{"test":true}`), testPrivkey())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(envelope, "."))
}
