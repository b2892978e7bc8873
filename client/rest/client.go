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
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sethvargo/go-retry"
)

const maxRetries = 3

// RestClient is the authenticated HTTP surface the Graph client is built on.
type RestClient interface {
	Get(ctx context.Context, path string, params url.Values, headers map[string]string) (*http.Response, error)
	Send(req *http.Request) (*http.Response, error)
	Token(ctx context.Context) (azcore.AccessToken, error)
	CloseIdleConnections()
}

type restClient struct {
	base       url.URL
	credential azcore.TokenCredential
	scopes     []string
	http       *http.Client
}

// NewRestClient builds an authenticated client rooted at baseUrl. Every
// request carries a bearer token acquired from the credential; azidentity
// credentials cache tokens internally.
func NewRestClient(baseUrl string, credential azcore.TokenCredential, proxyUrl string) (RestClient, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %s: %w", baseUrl, err)
	}

	httpClient, err := NewHTTPClient(proxyUrl)
	if err != nil {
		return nil, err
	}

	return &restClient{
		base:       *base,
		credential: credential,
		scopes:     []string{baseUrl + "/.default"},
		http:       httpClient,
	}, nil
}

func (s *restClient) Token(ctx context.Context) (azcore.AccessToken, error) {
	return s.credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: s.scopes})
}

func (s *restClient) Get(ctx context.Context, path string, params url.Values, headers map[string]string) (*http.Response, error) {
	endpoint := s.base.ResolveReference(&url.URL{Path: path})
	req, err := NewRequest(ctx, http.MethodGet, *endpoint, nil, params, headers)
	if err != nil {
		return nil, err
	}
	return s.Send(req)
}

// Send performs the request with bearer authorization, retrying transient
// failures (throttling, server errors, force closed connections) with
// exponential backoff.
func (s *restClient) Send(req *http.Request) (*http.Response, error) {
	token, err := s.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("acquiring access token: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.Token))

	// copy the bytes in case we need to retry the request
	body, err := CopyBody(req)
	if err != nil {
		return nil, err
	}

	var res *http.Response
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(time.Second))

	err = retry.Do(req.Context(), backoff, func(ctx context.Context) error {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		response, err := s.http.Do(req)
		if err != nil {
			if IsClosedConnectionErr(err) {
				return retry.RetryableError(err)
			}
			return err
		}

		if response.StatusCode == http.StatusTooManyRequests || response.StatusCode >= http.StatusInternalServerError {
			response.Body.Close()
			return retry.RetryableError(fmt.Errorf("received %s while requesting %v", response.Status, req.URL))
		}

		if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusBadRequest {
			defer response.Body.Close()
			return newStatusError(response)
		}

		res = response
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *restClient) CloseIdleConnections() {
	s.http.CloseIdleConnections()
}

// StatusError carries the status code and Graph error payload of a
// non-retryable failure response.
type StatusError struct {
	StatusCode int
	Status     string
	Code       string
	Message    string
}

func (s StatusError) Error() string {
	if s.Code != "" {
		return fmt.Sprintf("received %s: %s %s", s.Status, s.Code, s.Message)
	}
	return fmt.Sprintf("received %s", s.Status)
}

func newStatusError(res *http.Response) StatusError {
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	statusErr := StatusError{StatusCode: res.StatusCode, Status: res.Status}
	if err := json.NewDecoder(res.Body).Decode(&payload); err == nil {
		statusErr.Code = payload.Error.Code
		statusErr.Message = payload.Error.Message
	}
	return statusErr
}
