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

package codec

import (
	"encoding/base64"
	"fmt"

	lcore "github.com/lcore-project/lcore-go"
)

// Base64URLLen returns the exact number of characters needed to encode n
// bytes as unpadded base64url.
func Base64URLLen(n int) int {
	return base64.RawURLEncoding.EncodedLen(n)
}

// Base64URLEncode encodes src into dst as unpadded base64url (the standard
// base64 alphabet with '+' replaced by '-', '/' replaced by '_' and the '='
// padding removed) and returns the number of characters written.
//
// Fails with lcore.ErrInvalidInput when src is nil and with
// lcore.ErrBufferTooSmall when dst is shorter than Base64URLLen(len(src));
// dst is not modified on failure.
func Base64URLEncode(dst, src []byte) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("base64url: nil source: %w", lcore.ErrInvalidInput)
	}
	n := base64.RawURLEncoding.EncodedLen(len(src))
	if n > len(dst) {
		return 0, fmt.Errorf("base64url: need %d bytes, have %d: %w", n, len(dst), lcore.ErrBufferTooSmall)
	}
	base64.RawURLEncoding.Encode(dst, src)
	return n, nil
}

// Base64URLEncodeToString encodes src as unpadded base64url.
func Base64URLEncodeToString(src []byte) (string, error) {
	if src == nil {
		return "", fmt.Errorf("base64url: nil source: %w", lcore.ErrInvalidInput)
	}
	return base64.RawURLEncoding.EncodeToString(src), nil
}
