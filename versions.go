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

// Package lcore provides version information and the shared error taxonomy
// for the lcore-go device SDK.
package lcore

const (
	// Version is the current version of lcore-go
	Version = "0.1.0"

	// DIDMethod is the DID method produced by this SDK
	DIDMethod = "key"

	// JWSAlgorithm is the JWS signing algorithm produced by this SDK
	JWSAlgorithm = "ES256K"

	// SubmitPath is the attestor endpoint path signed submissions are POSTed to
	SubmitPath = "/api/device/submit"

	// HealthPath is the attestor health check endpoint path
	HealthPath = "/api/health"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SDKVersion   string
	DIDMethod    string
	JWSAlgorithm string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SDKVersion:   Version,
		DIDMethod:    DIDMethod,
		JWSAlgorithm: JWSAlgorithm,
	}
}
