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

package classify

import (
	"strings"

	"github.com/consenthound/consenthound/enums"
	"github.com/consenthound/consenthound/models"
)

// PermissionRoot returns the substring before the first '.' in a permission
// string, or the whole string when no dot is present. "Mail.Read" and
// "Mail.ReadWrite" are both rooted at "Mail".
func PermissionRoot(permission string) string {
	if i := strings.Index(permission, "."); i >= 0 {
		return permission[:i]
	}
	return permission
}

// Classify computes the privilege label for a record. Matching order: exact
// table match, then permission-root match, then a write heuristic for
// unmatched application permissions, then Unranked. The table cannot
// enumerate every fine-grained scope; the root match catches namespaced
// permission families, and unclassified write-capable application
// permissions default to high risk absent better data.
//
// Classify is deterministic and never mutates the table.
func Classify(record models.GrantRecord, table PermissionTable) enums.Privilege {
	grantType := record.PermissionType.GrantType()

	if privilege, found := table.Lookup(record.Permission, grantType); found {
		return privilege
	}

	if privilege, found := table.Lookup(PermissionRoot(record.Permission), grantType); found {
		return privilege
	}

	if grantType == enums.GrantTypeApplication {
		if strings.Contains(strings.ToLower(record.Permission), "write") {
			return enums.PrivilegeHigh
		}
		return enums.PrivilegeMedium
	}

	return enums.PrivilegeUnranked
}
