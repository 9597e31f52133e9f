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

package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	lcore "github.com/lcore-project/lcore-go"
)

// DefaultTimeout bounds a single submission round trip when no custom HTTP
// client is supplied.
const DefaultTimeout = 10 * time.Second

// HTTPSubmitter implements Submitter over net/http.
type HTTPSubmitter struct {
	httpClient *http.Client
}

// NewHTTPSubmitter creates a new HTTPSubmitter.
// If httpClient is nil, a client with DefaultTimeout is used.
func NewHTTPSubmitter(httpClient *http.Client) *HTTPSubmitter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPSubmitter{httpClient: httpClient}
}

var _ Submitter = (*HTTPSubmitter)(nil)

// Submit POSTs body to url and returns the HTTP outcome. The response body
// is drained and discarded. Network failures and non-2xx statuses wrap
// lcore.ErrTransport; in the non-2xx case the Response is still returned so
// the caller can inspect the status.
func (s *HTTPSubmitter) Submit(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error) {
	if url == "" {
		return nil, fmt.Errorf("transport: empty URL: %w", lcore.ErrInvalidInput)
	}
	if body == nil {
		return nil, fmt.Errorf("transport: nil body: %w", lcore.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("transport: creating request: %w: %w", err, lcore.ErrTransport)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: POST %s: %w: %w", url, err, lcore.ErrTransport)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; the body itself is not parsed.
	_, _ = io.Copy(io.Discard, resp.Body)

	result := &Response{StatusCode: resp.StatusCode, Status: resp.Status}
	if !result.OK() {
		return result, fmt.Errorf("transport: attestor returned %s: %w", resp.Status, lcore.ErrTransport)
	}
	return result, nil
}
