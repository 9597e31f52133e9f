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

// lcore-cli is an informal debugging tool for device identities and signed
// envelopes: derive DIDs, sign payloads, generate throwaway keys.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/urfave/cli/v2"

	lcore "github.com/lcore-project/lcore-go"
	"github.com/lcore-project/lcore-go/pkg/client"
	"github.com/lcore-project/lcore-go/pkg/identity"
	"github.com/lcore-project/lcore-go/pkg/jws"
)

func main() {
	app := cli.App{
		Name:    "lcore-cli",
		Usage:   "debugging CLI for device DIDs and ES256K envelopes",
		Version: fmt.Sprintf("%s (%s)", lcore.Version, versioninfo.Short()),
	}
	app.Commands = []*cli.Command{
		{
			Name:  "generate",
			Usage: "create a new random secp256k1 private key (hex)",
			Action: func(cctx *cli.Context) error {
				priv, err := secp256k1.GeneratePrivateKey()
				if err != nil {
					return err
				}
				fmt.Println(hex.EncodeToString(priv.Serialize()))
				return nil
			},
		},
		{
			Name:      "did",
			Usage:     "derive the did:key for a private key",
			ArgsUsage: "<privkey-hex>",
			Action:    runDID,
		},
		{
			Name:      "sign",
			Usage:     "sign a JSON payload as a compact ES256K JWS",
			ArgsUsage: "<privkey-hex> <payload-json>",
			Action:    runSign,
		},
		{
			Name:      "submit",
			Usage:     "sign a JSON payload and submit it to an attestor",
			ArgsUsage: "<privkey-hex> <payload-json>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "attestor",
					Usage:   "attestor base URL",
					Value:   "http://localhost:8001",
					EnvVars: []string{"ATTESTOR_URL"},
				},
			},
			Action: runSubmit,
		},
	}
	h := slog.NewTextHandler(os.Stderr, nil)
	slog.SetDefault(slog.New(h))
	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func keyArg(cctx *cli.Context) ([]byte, error) {
	if cctx.Args().Len() < 1 {
		return nil, fmt.Errorf("missing private key argument")
	}
	return hex.DecodeString(cctx.Args().Get(0))
}

func runDID(cctx *cli.Context) error {
	privkey, err := keyArg(cctx)
	if err != nil {
		return err
	}
	did, err := identity.DIDFromPrivateKey(privkey)
	if err != nil {
		return err
	}
	fmt.Println(did)
	return nil
}

func runSign(cctx *cli.Context) error {
	privkey, err := keyArg(cctx)
	if err != nil {
		return err
	}
	if cctx.Args().Len() < 2 {
		return fmt.Errorf("missing payload argument")
	}
	envelope, err := jws.Sign([]byte(cctx.Args().Get(1)), privkey)
	if err != nil {
		return err
	}
	fmt.Println(envelope)
	return nil
}

func runSubmit(cctx *cli.Context) error {
	privkey, err := keyArg(cctx)
	if err != nil {
		return err
	}
	if cctx.Args().Len() < 2 {
		return fmt.Errorf("missing payload argument")
	}

	c := client.NewClient(cctx.String("attestor"), client.WithLogger(slog.Default()))
	resp, err := c.SignAndSubmit(context.Background(), privkey, []byte(cctx.Args().Get(1)))
	if err != nil {
		return err
	}
	fmt.Println(resp.Status)
	return nil
}
