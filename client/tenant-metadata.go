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
	"net/url"
	"regexp"

	"github.com/consenthound/consenthound/client/rest"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/models/azure"
)

var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9]+([\-.][a-zA-Z0-9]+)*\.[a-zA-Z]{2,}$`)

// ValidateTenantDomain rejects values that are not plausible DNS domain
// names before any remote call is made with them.
func ValidateTenantDomain(domain string) error {
	if !domainPattern.MatchString(domain) {
		return fmt.Errorf("invalid tenant domain %q", domain)
	}
	return nil
}

// TenantMetadataResolver looks up tenant identity information from the
// public, unauthenticated metadata endpoints of the identity platform.
type TenantMetadataResolver struct {
	httpClient *http.Client
	loginUrl   string
}

func NewTenantMetadataResolver(proxyUrl string) (*TenantMetadataResolver, error) {
	httpClient, err := rest.NewHTTPClient(proxyUrl)
	if err != nil {
		return nil, err
	}
	return &TenantMetadataResolver{httpClient: httpClient, loginUrl: constants.LoginBaseUrl}, nil
}

// Resolve fetches the tenant's published OpenID configuration and user realm
// information for a verified domain. A missing or unresolvable tenant is an
// error; a failed realm lookup only leaves the realm fields empty.
func (s *TenantMetadataResolver) Resolve(ctx context.Context, domain string) (azure.Tenant, error) {
	var tenant azure.Tenant

	if err := ValidateTenantDomain(domain); err != nil {
		return tenant, err
	}
	tenant.Domain = domain

	conf, err := s.openIDConfiguration(ctx, domain)
	if err != nil {
		return tenant, err
	}
	tenant.TenantId = conf.TenantId

	if realm, err := s.userRealm(ctx, domain); err == nil {
		tenant.NamespaceType = realm.NameSpaceType
		tenant.FederationBrandName = realm.FederationBrandName
	}

	return tenant, nil
}

func (s *TenantMetadataResolver) openIDConfiguration(ctx context.Context, domain string) (azure.OpenIDConfiguration, error) {
	var conf azure.OpenIDConfiguration

	endpoint, err := url.Parse(fmt.Sprintf("%s/%s/.well-known/openid-configuration", s.loginUrl, domain))
	if err != nil {
		return conf, err
	}

	req, err := rest.NewRequest(ctx, http.MethodGet, *endpoint, nil, nil, nil)
	if err != nil {
		return conf, err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return conf, fmt.Errorf("fetching openid configuration for %s: %w", domain, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return conf, fmt.Errorf("no tenant found for domain %s: %s", domain, res.Status)
	}

	if err := rest.Decode(res.Body, &conf); err != nil {
		return conf, fmt.Errorf("decoding openid configuration for %s: %w", domain, err)
	}
	return conf, nil
}

func (s *TenantMetadataResolver) userRealm(ctx context.Context, domain string) (azure.UserRealm, error) {
	var realm azure.UserRealm

	endpoint, err := url.Parse(fmt.Sprintf("%s/getuserrealm.srf", s.loginUrl))
	if err != nil {
		return realm, err
	}

	params := url.Values{}
	params.Set("login", "user@"+domain)
	params.Set("json", "1")

	req, err := rest.NewRequest(ctx, http.MethodGet, *endpoint, nil, params, nil)
	if err != nil {
		return realm, err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return realm, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return realm, fmt.Errorf("user realm lookup for %s: %s", domain, res.Status)
	}

	if err := rest.Decode(res.Body, &realm); err != nil {
		return realm, err
	}
	return realm, nil
}
