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

import "strings"

// Consent type values documented for OAuth2 permission grants.
const (
	ConsentTypeAllPrincipals string = "AllPrincipals"
	ConsentTypePrincipal     string = "Principal"
)

// OAuth2PermissionGrant represents a delegated permission consented for a
// client application, either for all users or for one specific user.
// For more detail see https://learn.microsoft.com/en-us/graph/api/resources/oauth2permissiongrant?view=graph-rest-1.0
type OAuth2PermissionGrant struct {
	// Id of the OAuth2PermissionGrant.
	Id string `json:"id,omitempty"`

	// Object id (not appId) of the client service principal the consent was
	// granted to.
	ClientId string `json:"clientId,omitempty"`

	// Type of the consent: "AllPrincipals" or "Principal".
	ConsentType string `json:"consentType,omitempty"`

	// Object id of the user the grant is for; empty when consentType is
	// "AllPrincipals".
	PrincipalId string `json:"principalId,omitempty"`

	// Object id of the resource service principal the client is authorized
	// to access.
	ResourceId string `json:"resourceId,omitempty"`

	// Space-delimited list of consented scope names, e.g. "User.Read Mail.Read".
	Scope string `json:"scope,omitempty"`
}

// ScopeTokens splits the space-delimited scope claim into individual
// permission strings, dropping empty tokens and preserving order.
func (s OAuth2PermissionGrant) ScopeTokens() []string {
	return strings.Fields(s.Scope)
}
