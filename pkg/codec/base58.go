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
	"fmt"

	lcore "github.com/lcore-project/lcore-go"
)

// base58Alphabet is the Bitcoin base58 alphabet. The visually ambiguous
// characters 0, O, I and l are excluded.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Base58MaxLen returns an upper bound on the number of characters needed to
// base58-encode n bytes. 138/100 rounds up log(256)/log(58).
func Base58MaxLen(n int) int {
	return n*138/100 + 1
}

// Base58Encode encodes src into dst using the Bitcoin base58 alphabet and
// returns the number of characters written. Leading zero bytes of src are
// encoded as leading '1' characters.
//
// Fails with lcore.ErrInvalidInput when src is nil and with
// lcore.ErrBufferTooSmall when dst cannot hold the full encoding; dst is not
// modified on failure.
func Base58Encode(dst, src []byte) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("base58: nil source: %w", lcore.ErrInvalidInput)
	}

	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// Long division: the remaining bytes are one big-endian unsigned integer,
	// repeatedly divided by 58 with remainders recorded as base58 digits.
	size := Base58MaxLen(len(src) - zeros)
	buf := make([]byte, size)
	for i := zeros; i < len(src); i++ {
		carry := int(src[i])
		for j := size - 1; j >= 0; j-- {
			carry += 256 * int(buf[j])
			buf[j] = byte(carry % 58)
			carry /= 58
		}
	}

	// Skip the leading zero digits the worst-case sizing left behind.
	start := 0
	for start < size && buf[start] == 0 {
		start++
	}

	outLen := zeros + (size - start)
	if outLen > len(dst) {
		return 0, fmt.Errorf("base58: need %d bytes, have %d: %w", outLen, len(dst), lcore.ErrBufferTooSmall)
	}

	for i := 0; i < zeros; i++ {
		dst[i] = '1'
	}
	for i, digit := range buf[start:] {
		dst[zeros+i] = base58Alphabet[digit]
	}
	return outLen, nil
}

// Base58EncodeToString encodes src using the Bitcoin base58 alphabet.
// A zero-length src encodes to the empty string.
func Base58EncodeToString(src []byte) (string, error) {
	if src == nil {
		return "", fmt.Errorf("base58: nil source: %w", lcore.ErrInvalidInput)
	}
	dst := make([]byte, Base58MaxLen(len(src)))
	n, err := Base58Encode(dst, src)
	if err != nil {
		return "", err
	}
	return string(dst[:n]), nil
}
