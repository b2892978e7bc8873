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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCredential struct {
	token string
}

func (s staticCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: s.token}, nil
}

func TestSend_SetsBearerAuthorizationAndUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("User-Agent"), "consenthound")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"value": []}`))
	}))
	defer server.Close()

	client, err := NewRestClient(server.URL, staticCredential{token: "test-token"}, "")
	require.NoError(t, err)

	res, err := client.Get(context.Background(), "/v1.0/servicePrincipals", nil, nil)
	require.NoError(t, err)
	res.Body.Close()
}

func TestSend_RetriesThrottledRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("retry backoff makes this test slow")
	}

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewRestClient(server.URL, staticCredential{token: "t"}, "")
	require.NoError(t, err)

	res, err := client.Get(context.Background(), "/v1.0/organization", nil, nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, 2, calls)
}

func TestSend_ClientErrorIsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": "Authorization_RequestDenied", "message": "Insufficient privileges"}}`))
	}))
	defer server.Close()

	client, err := NewRestClient(server.URL, staticCredential{token: "t"}, "")
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/v1.0/servicePrincipals", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var statusErr StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "Authorization_RequestDenied", statusErr.Code)
	assert.Contains(t, statusErr.Error(), "Insufficient privileges")
}

func TestNewRestClient_RejectsInvalidProxy(t *testing.T) {
	_, err := NewRestClient("https://graph.microsoft.com", staticCredential{}, "://nope")
	assert.Error(t, err)
}
