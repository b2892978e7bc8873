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

package enums

// PermissionType identifies how a permission was granted to a client
// application. Delegated grants are further qualified by their consent type.
type PermissionType string

const (
	PermissionTypeDelegatedAllPrincipals PermissionType = "Delegated-AllPrincipals"
	PermissionTypeDelegatedPrincipal     PermissionType = "Delegated-Principal"
	PermissionTypeApplication            PermissionType = "Application"

	// PermissionTypeUnknown is emitted for consent type values the Graph API
	// is not documented to return. Left blank on purpose so the unexpected
	// value is visible in the report rather than guessed at.
	PermissionTypeUnknown PermissionType = ""
)

// GrantType collapses the delegated permission-type subtypes into the two
// logical grant types used by the privilege classification table.
func (s PermissionType) GrantType() GrantType {
	switch s {
	case PermissionTypeDelegatedAllPrincipals, PermissionTypeDelegatedPrincipal:
		return GrantTypeDelegated
	case PermissionTypeApplication:
		return GrantTypeApplication
	default:
		return GrantTypeUnknown
	}
}

type GrantType string

const (
	GrantTypeDelegated   GrantType = "Delegated"
	GrantTypeApplication GrantType = "Application"
	GrantTypeUnknown     GrantType = ""
)
