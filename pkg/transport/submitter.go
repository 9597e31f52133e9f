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

import "context"

// Response reports the HTTP outcome of a submission. The response body is
// intentionally absent: the SDK does not depend on or parse it.
type Response struct {
	// StatusCode is the HTTP status code, e.g. 200.
	StatusCode int

	// Status is the full status line, e.g. "200 OK".
	Status string
}

// OK reports whether the attestor accepted the submission.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Submitter delivers a signed submission body to an attestor endpoint.
//
// Implementations handle one blocking POST per call, with timeouts owned by
// the implementation. They must not retry: retrying is the caller's decision.
type Submitter interface {
	// Submit POSTs body to url with the given headers and returns the HTTP
	// outcome. A non-nil Response may accompany a non-nil error when the
	// server answered with a failure status.
	Submit(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error)
}
