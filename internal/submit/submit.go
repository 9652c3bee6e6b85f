/*
 * ============= Ryft-Customized BSD License ============
 * Copyright (c) 2015, Ryft Systems, Inc.
 * All rights reserved.
 * Redistribution and use in source and binary forms, with or without modification,
 * are permitted provided that the following conditions are met:
 *
 * 1. Redistributions of source code must retain the above copyright notice,
 *   this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright notice,
 *   this list of conditions and the following disclaimer in the documentation and/or
 *   other materials provided with the distribution.
 * 3. All advertising materials mentioning features or use of this software must display the following acknowledgement:
 *   This product includes software developed by Ryft Systems, Inc.
 * 4. Neither the name of Ryft Systems, Inc. nor the names of its contributors may be used
 *   to endorse or promote products derived from this software without specific prior written permission.
 *
 * THIS SOFTWARE IS PROVIDED BY RYFT SYSTEMS, INC. ''AS IS'' AND ANY
 * EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
 * WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
 * DISCLAIMED. IN NO EVENT SHALL RYFT SYSTEMS, INC. BE LIABLE FOR ANY
 * DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
 * (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
 * LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
 * ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
 * (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
 * SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
 * ============
 */

// Package submit is the documented extension point for "submitting
// compiled queries to remote search services" (spec.md §1), explicitly
// out of scope for the core. It defines the client interface, a dry-run
// implementation that never touches the network, and an HTTP-backed
// client for a caller that actually has a PubMed/Europe PMC/Cochrane
// endpoint to talk to.
package submit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client submits a compiled, dialect-specific query string to a remote
// search service and reports whatever the service hands back.
type Client interface {
	Submit(ctx context.Context, dialect, compiled string) (Response, error)
}

// Response is the result of a submission. Body is left as raw text; this
// package does not know how to interpret any particular database's
// response shape.
type Response struct {
	StatusCode int
	Body       string
}

// DryRunClient never makes a network call; it reports a synthetic 200
// whose Body describes what would have been sent. Tests and offline
// callers can use it without a real endpoint configured.
type DryRunClient struct{}

func (DryRunClient) Submit(ctx context.Context, dialect, compiled string) (Response, error) {
	return Response{StatusCode: http.StatusOK, Body: fmt.Sprintf("dry-run: would submit to %s: %s", dialect, compiled)}, nil
}

// HTTPClient is the live implementation, POSTing the compiled query to a
// configured base URL per dialect. It is not exercised by any test in
// this repo since that would require a real network endpoint; it exists
// to give Client a real second implementation to satisfy.
type HTTPClient struct {
	BaseURLs map[string]string
	Client   *http.Client
}

// NewHTTPClient builds an HTTPClient with a sane default timeout.
func NewHTTPClient(baseURLs map[string]string) *HTTPClient {
	return &HTTPClient{
		BaseURLs: baseURLs,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) Submit(ctx context.Context, dialect, compiled string) (Response, error) {
	base, ok := c.BaseURLs[dialect]
	if !ok {
		return Response{}, fmt.Errorf("no submit endpoint configured for dialect %q", dialect)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base, nil)
	if err != nil {
		return Response{}, err
	}
	req.URL.RawQuery = url.Values{"q": {compiled}}.Encode()

	resp, err := c.Client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, err
	}
	return Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
}
