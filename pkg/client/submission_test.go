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

package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lcore "github.com/lcore-project/lcore-go"
)

func TestSubmission_Body(t *testing.T) {
	sub := &Submission{
		DID:       "did:key:ztest",
		Payload:   []byte(`{"temperature": 23.4}`),
		Signature: "h.p.s",
		Timestamp: 1700000000,
	}

	body, err := sub.Body()
	require.NoError(t, err)
	assert.Equal(t,
		`{"did":"did:key:ztest","payload":{"temperature": 23.4},"signature":"h.p.s","timestamp":1700000000}`,
		string(body))
	assert.True(t, json.Valid(body))
}

func TestSubmission_Body_PayloadVerbatim(t *testing.T) {
	// Whitespace and key order inside the payload fragment must survive;
	// the attestor checks it against the signed JWS payload segment.
	payload := []byte("{\n  \"b\": 2,\n  \"a\": 1\n}")
	sub := &Submission{DID: "did:key:z1", Payload: payload, Signature: "h.p.s", Timestamp: 1}

	body, err := sub.Body()
	require.NoError(t, err)
	assert.Contains(t, string(body), string(payload))
}

func TestSubmission_Body_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
	}{
		{"empty DID", Submission{Payload: []byte(`{}`), Signature: "h.p.s"}},
		{"nil payload", Submission{DID: "did:key:z1", Signature: "h.p.s"}},
		{"empty signature", Submission{DID: "did:key:z1", Payload: []byte(`{}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := tt.sub.Body()
			assert.ErrorIs(t, err, lcore.ErrInvalidInput)
			assert.Nil(t, body)
		})
	}
}
