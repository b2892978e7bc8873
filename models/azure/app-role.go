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

// AppRole represents an application role declared by an application or
// service principal. The Value field is the human-readable permission string
// (e.g. "Mail.Read") that clients request; the Id is what actually appears on
// app role assignments. See
// https://learn.microsoft.com/en-us/graph/api/resources/approle?view=graph-rest-1.0
type AppRole struct {
	// Unique role identifier within the appRoles collection.
	Id string `json:"id,omitempty"`

	// Principal types allowed to be assigned the role: "User", "Application".
	AllowedMemberTypes []string `json:"allowedMemberTypes,omitempty"`

	// Description shown during consent experiences.
	Description string `json:"description,omitempty"`

	// Display name for the permission.
	DisplayName string `json:"displayName,omitempty"`

	// Whether the role is available for assignment.
	IsEnabled bool `json:"isEnabled,omitempty"`

	// Origin of the role definition: "Application" or "ServicePrincipal".
	Origin string `json:"origin,omitempty"`

	// Value of the roles claim; the permission string reported on grants.
	Value string `json:"value,omitempty"`
}
