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

// Package transport delivers signed submission bodies to an attestor.
//
// The Submitter interface is the single seam between the signing core and
// the network: it accepts a URL, a header set and an opaque body, and
// reports the HTTP outcome. Implementations are selected at composition
// time, never by the core at runtime.
//
// HTTPSubmitter is the net/http implementation:
//
//	submitter := transport.NewHTTPSubmitter(nil) // default 10s timeout
//	resp, err := submitter.Submit(ctx, url, headers, body)
//
// Failures wrap lcore.ErrTransport. The response body is never parsed; only
// the HTTP status is surfaced. Transport errors are the one category a
// caller may retry; the submitter itself never does.
package transport
