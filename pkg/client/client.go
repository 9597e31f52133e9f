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
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	lcore "github.com/lcore-project/lcore-go"
	"github.com/lcore-project/lcore-go/pkg/identity"
	"github.com/lcore-project/lcore-go/pkg/jws"
	"github.com/lcore-project/lcore-go/pkg/transport"
)

// Client submits signed device data to an attestor.
type Client struct {
	attestorURL string
	signer      jws.Signer
	submitter   transport.Submitter
	httpClient  *http.Client
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSigner replaces the default ES256K signer.
func WithSigner(s jws.Signer) Option {
	return func(c *Client) { c.signer = s }
}

// WithSubmitter replaces the default HTTP submitter, e.g. for platforms with
// their own network stack or for tests.
func WithSubmitter(s transport.Submitter) Option {
	return func(c *Client) { c.submitter = s }
}

// WithHTTPClient sets the HTTP client used for submissions and health checks.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger enables structured logging. The client is silent by default and
// never logs key material.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the attestor at the given base URL,
// e.g. "http://localhost:8001".
func NewClient(attestorURL string, opts ...Option) *Client {
	c := &Client{attestorURL: strings.TrimRight(attestorURL, "/")}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: transport.DefaultTimeout}
	}
	if c.signer == nil {
		c.signer = jws.NewES256KSigner()
	}
	if c.submitter == nil {
		c.submitter = transport.NewHTTPSubmitter(c.httpClient)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// AttestorURL returns the attestor base URL.
func (c *Client) AttestorURL() string {
	return c.attestorURL
}

// Submit assembles the submission body for an already-signed payload and
// POSTs it to the attestor's submit endpoint. The timestamp is collected
// here, once per call.
func (c *Client) Submit(ctx context.Context, did identity.DID, payload []byte, signature string) (*transport.Response, error) {
	sub := &Submission{
		DID:       did,
		Payload:   payload,
		Signature: signature,
		Timestamp: uint64(time.Now().Unix()),
	}
	body, err := sub.Body()
	if err != nil {
		return nil, err
	}

	url := c.attestorURL + lcore.SubmitPath
	headers := map[string]string{"Content-Type": "application/json"}

	c.logger.Debug("submitting device data", "did", did, "url", url, "bytes", len(body))
	resp, err := c.submitter.Submit(ctx, url, headers, body)
	if err != nil {
		return resp, fmt.Errorf("client: submitting to attestor: %w", err)
	}
	c.logger.Debug("attestor accepted submission", "did", did, "status", resp.Status)
	return resp, nil
}

// SignAndSubmit derives the device DID from privkey, signs payload as an
// ES256K JWS and submits the result. It is the one-call path mirroring a
// device's steady-state loop: read sensor, sign, submit.
func (c *Client) SignAndSubmit(ctx context.Context, privkey []byte, payload []byte) (*transport.Response, error) {
	did, err := identity.DIDFromPrivateKey(privkey)
	if err != nil {
		return nil, fmt.Errorf("client: deriving DID: %w", err)
	}

	envelope, err := c.signer.Sign(payload, privkey)
	if err != nil {
		return nil, fmt.Errorf("client: signing payload: %w", err)
	}

	return c.Submit(ctx, did, payload, envelope)
}

// Health checks the attestor's health endpoint. A nil error means the
// attestor answered 200 OK.
func (c *Client) Health(ctx context.Context) error {
	url := c.attestorURL + lcore.HealthPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("client: creating health request: %w: %w", err, lcore.ErrTransport)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: GET %s: %w: %w", url, err, lcore.ErrTransport)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client: attestor unhealthy: %s: %w", resp.Status, lcore.ErrTransport)
	}
	return nil
}
