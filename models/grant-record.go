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

package models

import "github.com/consenthound/consenthound/enums"

// GrantRecord is the unified report row for one consented permission.
// Delegated grants produce one record per scope token; application grants
// produce one record per app role assignment. The Privilege field is attached
// exactly once by the classifier; records are never modified afterwards.
type GrantRecord struct {
	PermissionType enums.PermissionType `json:"permissionType"`

	ClientObjectId    string `json:"clientObjectId"`
	ClientDisplayName string `json:"clientDisplayName"`

	ResourceObjectId    string `json:"resourceObjectId"`
	ResourceDisplayName string `json:"resourceDisplayName"`

	// Permission is the scope name for delegated grants, or the app role
	// value (falling back to the raw role id) for application grants.
	Permission string `json:"permission"`

	// Principal fields are populated for delegated grants with a resolvable
	// principal and always empty for application grants.
	PrincipalObjectId    string `json:"principalObjectId,omitempty"`
	PrincipalDisplayName string `json:"principalDisplayName,omitempty"`

	// MicrosoftRegisteredClientApp is true when the client application is
	// owned by one of the known Microsoft first-party tenants.
	MicrosoftRegisteredClientApp bool `json:"microsoftRegisteredClientApp"`

	AppOwnerOrganizationId string `json:"appOwnerOrganizationId,omitempty"`

	Privilege enums.Privilege `json:"privilege,omitempty"`
}
