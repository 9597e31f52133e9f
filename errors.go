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

package lcore

import "errors"

// Error taxonomy shared by all SDK packages. Callers match with errors.Is;
// each layer wraps these with context via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidInput indicates an absent required argument or a key/payload
	// of the wrong shape (for example a private key that is not 32 bytes).
	ErrInvalidInput = errors.New("invalid input")

	// ErrBufferTooSmall indicates a caller-supplied destination buffer that
	// cannot hold the full output. Nothing is written on this failure.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrCrypto indicates an opaque failure from the cryptographic primitives
	// (curve setup, key import, signing, hashing). Not retriable: a fresh
	// call is the only retry path.
	ErrCrypto = errors.New("crypto operation failed")

	// ErrTransport indicates a network or HTTP failure while talking to the
	// attestor. The only category a caller may reasonably retry.
	ErrTransport = errors.New("transport failure")
)
