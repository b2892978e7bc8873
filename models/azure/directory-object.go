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

const odataTypePrefix = "#microsoft.graph."

// DirectoryObject represents the common directory entity shape returned by
// /directoryObjects/{id} lookups. Concrete entities (service principals,
// users, groups) extend it. See
// https://learn.microsoft.com/en-us/graph/api/resources/directoryobject?view=graph-rest-1.0
type DirectoryObject struct {
	// Unique identifier of the object.
	Id string `json:"id,omitempty"`

	// Time at which the object was deleted, if soft-deleted.
	DeletedDateTime string `json:"deletedDateTime,omitempty"`

	// Display name of the object. Not every directory object type carries one.
	DisplayName string `json:"displayName,omitempty"`

	// OData type discriminator, e.g. "#microsoft.graph.servicePrincipal".
	ODataType string `json:"@odata.type,omitempty"`

	// Application roles declared by the object. Only populated for
	// applications and service principals.
	AppRoles []AppRole `json:"appRoles,omitempty"`
}

// Kind returns the OData type discriminator without its "#microsoft.graph."
// prefix, e.g. "servicePrincipal". Empty when the remote response carried no
// discriminator.
func (s DirectoryObject) Kind() string {
	return strings.TrimPrefix(s.ODataType, odataTypePrefix)
}
