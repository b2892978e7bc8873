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

// ServicePrincipal represents an application's identity within a tenant.
// It is both a client (holder of grants) and a resource (declarer of app
// roles and scopes) depending on grant direction. For more detail see
// https://learn.microsoft.com/en-us/graph/api/resources/serviceprincipal?view=graph-rest-1.0
type ServicePrincipal struct {
	DirectoryObject

	// AccountEnabled is true if the service principal account is enabled.
	AccountEnabled bool `json:"accountEnabled,omitempty"`

	// Application (client) id of the associated application registration.
	AppId string `json:"appId,omitempty"`

	// Display name exposed by the associated application.
	AppDisplayName string `json:"appDisplayName,omitempty"`

	// Tenant id of the organization that registered the application. Used to
	// flag Microsoft-registered, first-party applications.
	AppOwnerOrganizationId string `json:"appOwnerOrganizationId,omitempty"`

	// Whether users or other apps must be assigned an app role before Entra
	// ID issues tokens for the application.
	AppRoleAssignmentRequired bool `json:"appRoleAssignmentRequired,omitempty"`

	// App role assignments granted on this service principal to other
	// principals, populated via $expand=appRoleAssignedTo.
	AppRoleAssignedTo []AppRoleAssignment `json:"appRoleAssignedTo,omitempty"`

	// Type of the service principal: "Application", "ManagedIdentity", "Legacy".
	ServicePrincipalType string `json:"servicePrincipalType,omitempty"`

	// Audiences that can obtain tokens: "AzureADMyOrg", "AzureADMultipleOrgs", etc.
	SignInAudience string `json:"signInAudience,omitempty"`

	Tags []string `json:"tags,omitempty"`
}

// IsFirstParty reports whether the owning organization is one of the known
// Microsoft first-party tenants.
func (s ServicePrincipal) IsFirstParty(firstPartyTenants []string) bool {
	for _, id := range firstPartyTenants {
		if s.AppOwnerOrganizationId == id {
			return true
		}
	}
	return false
}
