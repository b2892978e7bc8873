// Copyright (C) 2026 ConsentHound Contributors
//
// This file is part of ConsentHound.
//
// ConsentHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ConsentHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/consenthound/consenthound/constants"
)

// NewHTTPClient creates the underlying http.Client, optionally routed through
// an explicit proxy.
func NewHTTPClient(proxyUrl string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyUrl != "" {
		proxy, err := url.Parse(proxyUrl)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy url %s: %w", proxyUrl, err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &http.Client{Transport: transport}, nil
}

// NewRequest builds a request with the JSON body, query parameters and
// standard headers applied.
func NewRequest(ctx context.Context, method string, endpoint url.URL, body interface{}, params url.Values, headers map[string]string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, err
		}
		reader = buf
	}

	if params != nil {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", constants.UserAgent())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// CopyBody drains and restores the request body so the request can be
// replayed on retry.
func CopyBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewBuffer(body))
	return body, nil
}

// IsClosedConnectionErr detects remote hosts force closing the connection,
// which is worth a retry rather than a failure.
func IsClosedConnectionErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "wsarecv: An existing connection was forcibly closed by the remote host") ||
		strings.Contains(err.Error(), "read: connection reset by peer")
}

// Decode reads the response body as JSON into out and closes it.
func Decode(body io.ReadCloser, out interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(out)
}
