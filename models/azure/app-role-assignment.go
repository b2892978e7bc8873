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

// AppRoleAssignment represents an application permission granted to a client
// service principal's own identity. For more detail see
// https://learn.microsoft.com/en-us/graph/api/resources/approleassignment?view=graph-rest-1.0
type AppRoleAssignment struct {
	// Id of the assignment itself.
	Id string `json:"id,omitempty"`

	// Identifier of the app role granted, drawn from the resource's appRoles.
	// The all-zero UUID denotes the default role.
	AppRoleId string `json:"appRoleId,omitempty"`

	// Time at which the grant was created.
	CreatedDateTime string `json:"createdDateTime,omitempty"`

	// Display name of the assigned user, group, or service principal.
	PrincipalDisplayName string `json:"principalDisplayName,omitempty"`

	// Object id of the assigned user, group, or service principal.
	PrincipalId string `json:"principalId,omitempty"`

	// Type of the assigned principal: "User", "Group" or "ServicePrincipal".
	PrincipalType string `json:"principalType,omitempty"`

	// Display name of the resource service principal that declared the role.
	ResourceDisplayName string `json:"resourceDisplayName,omitempty"`

	// Object id of the resource service principal that declared the role.
	ResourceId string `json:"resourceId,omitempty"`
}
