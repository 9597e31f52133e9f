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

// Example: sign a sensor reading and submit it to an attestor.
//
// The attestor URL is read from the ATTESTOR_URL environment variable
// (a .env file is honored), defaulting to http://localhost:8001.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/lcore-project/lcore-go/pkg/client"
	"github.com/lcore-project/lcore-go/pkg/identity"
)

// Example device private key. In production, load it from secure storage.
var devicePrivkey = []byte{
	0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89,
	0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89,
	0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89,
	0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89,
}

func main() {
	_ = godotenv.Load()

	attestorURL := os.Getenv("ATTESTOR_URL")
	if attestorURL == "" {
		attestorURL = "http://localhost:8001"
	}
	if len(os.Args) > 1 {
		attestorURL = os.Args[1]
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	fmt.Println("lcore-go Example: Submit Sensor Data")
	fmt.Println("====================================")

	// Step 1: Derive the device DID from the private key
	did, err := identity.DIDFromPrivateKey(devicePrivkey)
	if err != nil {
		logger.Error("deriving DID", "err", err)
		os.Exit(1)
	}
	fmt.Printf("\n1. Device DID: %s\n", did)

	// Step 2: Check the attestor is reachable
	c := client.NewClient(attestorURL, client.WithLogger(logger))
	fmt.Printf("\n2. Checking attestor at %s...\n", attestorURL)
	if err := c.Health(ctx); err != nil {
		logger.Error("attestor health check failed", "err", err)
		os.Exit(1)
	}
	fmt.Println("   Attestor is healthy")

	// Step 3: Sign and submit a sensor reading
	payload := []byte(`{"temperature":23.4,"humidity":65.2,"source":"example"}`)
	fmt.Printf("\n3. Submitting payload: %s\n", payload)
	resp, err := c.SignAndSubmit(ctx, devicePrivkey, payload)
	if err != nil {
		logger.Error("submission failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("   Attestor answered: %s\n", resp.Status)
}
