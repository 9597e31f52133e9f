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

// Example: print the did:key for a private key supplied as hex, or for a
// fixed example key when no argument is given.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/lcore-project/lcore-go/pkg/identity"
)

func main() {
	privkey := make([]byte, identity.PrivateKeySize)
	for i := range privkey {
		privkey[i] = byte(i + 1)
	}

	if len(os.Args) > 1 {
		decoded, err := hex.DecodeString(os.Args[1])
		if err != nil {
			log.Fatalf("invalid hex key: %v", err)
		}
		privkey = decoded
	}

	did, err := identity.DIDFromPrivateKey(privkey)
	if err != nil {
		log.Fatalf("deriving DID: %v", err)
	}
	fmt.Println(did)
}
