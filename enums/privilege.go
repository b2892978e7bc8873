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

// Privilege is the risk severity attached to a classified grant record.
// Ordinal: High > Medium > Low. Unranked means no table row or heuristic
// matched. Tables may carry additional labels; those pass through untouched.
type Privilege string

const (
	PrivilegeHigh     Privilege = "High"
	PrivilegeMedium   Privilege = "Medium"
	PrivilegeLow      Privilege = "Low"
	PrivilegeUnranked Privilege = "Unranked"
)
