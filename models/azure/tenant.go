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

package azure

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gofrs/uuid"
)

// Tenant holds the identity information resolved for a directory tenant,
// either from the access token of an authenticated session or from the
// public, unauthenticated metadata endpoints.
type Tenant struct {
	TenantId            string `json:"tenantId,omitempty"`
	DisplayName         string `json:"displayName,omitempty"`
	Domain              string `json:"domain,omitempty"`
	NamespaceType       string `json:"namespaceType,omitempty"`
	FederationBrandName string `json:"federationBrandName,omitempty"`
}

type openIDConfigurationAlias OpenIDConfiguration

type openIDConfigurationUnmarshalJSON struct {
	*openIDConfigurationAlias
	Issuer string `json:"issuer,omitempty"`
}

// OpenIDConfiguration is the subset of the tenant's published
// .well-known/openid-configuration document needed to identify the tenant.
type OpenIDConfiguration struct {
	Issuer                string `json:"issuer,omitempty"`
	AuthorizationEndpoint string `json:"authorization_endpoint,omitempty"`
	TokenEndpoint         string `json:"token_endpoint,omitempty"`

	// TenantId is derived from the issuer during unmarshalling; it is not a
	// field of the remote document.
	TenantId string `json:"-"`
}

func (s *OpenIDConfiguration) UnmarshalJSON(data []byte) error {
	aux := openIDConfigurationUnmarshalJSON{openIDConfigurationAlias: (*openIDConfigurationAlias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.Issuer = aux.Issuer
	if s.TenantId == "" {
		s.TenantId = tenantIdFromEndpoint(aux.Issuer)
	}
	if s.TenantId == "" {
		s.TenantId = tenantIdFromEndpoint(s.AuthorizationEndpoint)
	}

	return nil
}

// tenantIdFromEndpoint pulls the first path segment that parses as a UUID out
// of an issuer or endpoint URL, e.g. https://sts.windows.net/{tenantId}/.
func tenantIdFromEndpoint(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	for _, segment := range strings.Split(parsed.Path, "/") {
		if id, err := uuid.FromString(segment); err == nil {
			return id.String()
		}
	}
	return ""
}

// UserRealm is the response shape of the public getuserrealm.srf endpoint.
type UserRealm struct {
	// "Managed" for cloud-only tenants, "Federated" for federated ones,
	// "Unknown" when the domain is not registered in any tenant.
	NameSpaceType string `json:"NameSpaceType,omitempty"`

	// Display name of the federation/branding configuration, when published.
	FederationBrandName string `json:"FederationBrandName,omitempty"`

	// Name of the cloud instance, e.g. "microsoftonline.com".
	CloudInstanceName string `json:"CloudInstanceName,omitempty"`

	Login string `json:"Login,omitempty"`
}
