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

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantId = "6babcaad-604b-40ac-a9d7-9fd97c0b779f"

func TestValidateTenantDomain(t *testing.T) {
	for _, domain := range []string{"contoso.com", "contoso.onmicrosoft.com", "my-org.co.uk"} {
		assert.NoError(t, ValidateTenantDomain(domain), domain)
	}
	for _, domain := range []string{"", "contoso", ".com", "contoso..com", "has space.com", "https://contoso.com"} {
		assert.Error(t, ValidateTenantDomain(domain), domain)
	}
}

func TestResolve_ReturnsTenantMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contoso.com/.well-known/openid-configuration":
			fmt.Fprintf(w, `{"issuer": "https://sts.windows.net/%s/"}`, testTenantId)
		case "/getuserrealm.srf":
			assert.Equal(t, "user@contoso.com", r.URL.Query().Get("login"))
			fmt.Fprint(w, `{"NameSpaceType": "Federated", "FederationBrandName": "Contoso AD FS", "Login": "user@contoso.com"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	resolver, err := NewTenantMetadataResolver("")
	require.NoError(t, err)
	resolver.loginUrl = server.URL

	tenant, err := resolver.Resolve(context.Background(), "contoso.com")
	require.NoError(t, err)
	assert.Equal(t, testTenantId, tenant.TenantId)
	assert.Equal(t, "contoso.com", tenant.Domain)
	assert.Equal(t, "Federated", tenant.NamespaceType)
	assert.Equal(t, "Contoso AD FS", tenant.FederationBrandName)
}

func TestResolve_UnknownDomainFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": "invalid_tenant"}`)
	}))
	defer server.Close()

	resolver, err := NewTenantMetadataResolver("")
	require.NoError(t, err)
	resolver.loginUrl = server.URL

	_, err = resolver.Resolve(context.Background(), "no-such-tenant.example")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tenant found")
}

func TestResolve_RealmFailureLeavesRealmFieldsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/contoso.com/.well-known/openid-configuration" {
			fmt.Fprintf(w, `{"issuer": "https://sts.windows.net/%s/"}`, testTenantId)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver, err := NewTenantMetadataResolver("")
	require.NoError(t, err)
	resolver.loginUrl = server.URL

	tenant, err := resolver.Resolve(context.Background(), "contoso.com")
	require.NoError(t, err)
	assert.Equal(t, testTenantId, tenant.TenantId)
	assert.Empty(t, tenant.NamespaceType)
	assert.Empty(t, tenant.FederationBrandName)
}

func TestResolve_RejectsInvalidDomainWithoutNetworkCall(t *testing.T) {
	resolver, err := NewTenantMetadataResolver("")
	require.NoError(t, err)
	resolver.loginUrl = "http://127.0.0.1:1" // must never be contacted

	_, err = resolver.Resolve(context.Background(), "not a domain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tenant domain")
}
