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
	"fmt"
	"strconv"
	"strings"

	lcore "github.com/lcore-project/lcore-go"
	"github.com/lcore-project/lcore-go/pkg/identity"
)

// Submission is the wire body consumed by the attestor's submit endpoint.
type Submission struct {
	// DID identifies the submitting device.
	DID identity.DID

	// Payload is the signed JSON document, embedded verbatim as a raw
	// fragment. It is never parsed or validated here.
	Payload []byte

	// Signature is the compact JWS over Payload.
	Signature string

	// Timestamp is seconds since the Unix epoch, collected once per
	// submission.
	Timestamp uint64
}

// Body serializes the submission as
//
//	{"did":"...","payload":<raw>,"signature":"...","timestamp":N}
//
// The payload bytes are emitted unchanged so they stay byte-identical to the
// JWS payload segment. DID and JWS strings contain no characters that need
// JSON escaping.
func (s *Submission) Body() ([]byte, error) {
	if s.DID == "" {
		return nil, fmt.Errorf("client: empty DID: %w", lcore.ErrInvalidInput)
	}
	if s.Payload == nil {
		return nil, fmt.Errorf("client: nil payload: %w", lcore.ErrInvalidInput)
	}
	if s.Signature == "" {
		return nil, fmt.Errorf("client: empty signature: %w", lcore.ErrInvalidInput)
	}

	var b strings.Builder
	b.Grow(len(s.DID) + len(s.Payload) + len(s.Signature) + 64)
	b.WriteString(`{"did":"`)
	b.WriteString(string(s.DID))
	b.WriteString(`","payload":`)
	b.Write(s.Payload)
	b.WriteString(`,"signature":"`)
	b.WriteString(s.Signature)
	b.WriteString(`","timestamp":`)
	b.WriteString(strconv.FormatUint(s.Timestamp, 10))
	b.WriteString(`}`)
	return []byte(b.String()), nil
}
