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

package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consenthound/consenthound/classify"
	"github.com/consenthound/consenthound/enums"
	"github.com/consenthound/consenthound/models"
)

func delegated(permission string) models.GrantRecord {
	return models.GrantRecord{
		PermissionType: enums.PermissionTypeDelegatedAllPrincipals,
		Permission:     permission,
	}
}

func application(permission string) models.GrantRecord {
	return models.GrantRecord{
		PermissionType: enums.PermissionTypeApplication,
		Permission:     permission,
	}
}

func TestPermissionRoot(t *testing.T) {
	assert.Equal(t, "Mail", classify.PermissionRoot("Mail.Read"))
	assert.Equal(t, "Mail", classify.PermissionRoot("Mail.ReadWrite.All"))
	assert.Equal(t, "full_access_as_app", classify.PermissionRoot("full_access_as_app"))
	assert.Equal(t, "", classify.PermissionRoot(""))
}

func TestClassify_ExactMatchWinsOverRootMatch(t *testing.T) {
	table := classify.NewPermissionTable([]classify.Row{
		{Permission: "Mail.Read", GrantType: enums.GrantTypeDelegated, Privilege: enums.PrivilegeLow},
		{Permission: "Mail", GrantType: enums.GrantTypeDelegated, Privilege: enums.PrivilegeMedium},
	})

	assert.Equal(t, enums.PrivilegeLow, classify.Classify(delegated("Mail.Read"), table))
}

func TestClassify_RootFallback(t *testing.T) {
	table := classify.NewPermissionTable([]classify.Row{
		{Permission: "Mail", GrantType: enums.GrantTypeDelegated, Privilege: enums.PrivilegeMedium},
	})

	assert.Equal(t, enums.PrivilegeMedium, classify.Classify(delegated("Mail.ReadWrite"), table))
}

func TestClassify_GrantTypeMustMatch(t *testing.T) {
	table := classify.NewPermissionTable([]classify.Row{
		{Permission: "Mail.Read", GrantType: enums.GrantTypeApplication, Privilege: enums.PrivilegeHigh},
	})

	// The row is for Application grants, so a delegated record of the same
	// permission falls through to Unranked.
	assert.Equal(t, enums.PrivilegeUnranked, classify.Classify(delegated("Mail.Read"), table))
}

func TestClassify_BothDelegatedSubtypesMapToDelegated(t *testing.T) {
	table := classify.NewPermissionTable([]classify.Row{
		{Permission: "Mail.Read", GrantType: enums.GrantTypeDelegated, Privilege: enums.PrivilegeLow},
	})

	record := delegated("Mail.Read")
	record.PermissionType = enums.PermissionTypeDelegatedPrincipal
	assert.Equal(t, enums.PrivilegeLow, classify.Classify(record, table))

	record.PermissionType = enums.PermissionTypeDelegatedAllPrincipals
	assert.Equal(t, enums.PrivilegeLow, classify.Classify(record, table))
}

func TestClassify_ApplicationWriteHeuristic(t *testing.T) {
	empty := classify.NewPermissionTable(nil)

	assert.Equal(t, enums.PrivilegeHigh, classify.Classify(application("Mail.ReadWrite.All"), empty))
	assert.Equal(t, enums.PrivilegeHigh, classify.Classify(application("files.readwrite"), empty))
	assert.Equal(t, enums.PrivilegeMedium, classify.Classify(application("User.Read.All"), empty))
	assert.Equal(t, enums.PrivilegeMedium, classify.Classify(application("Sites.FullControl.All"), empty))
}

func TestClassify_UnmatchedDelegatedIsUnranked(t *testing.T) {
	empty := classify.NewPermissionTable(nil)

	assert.Equal(t, enums.PrivilegeUnranked, classify.Classify(delegated("Calendars.Read"), empty))
}

func TestClassify_BlankPermissionTypeIsUnranked(t *testing.T) {
	table := classify.NewPermissionTable([]classify.Row{
		{Permission: "Mail.Read", GrantType: enums.GrantTypeDelegated, Privilege: enums.PrivilegeLow},
	})

	record := models.GrantRecord{PermissionType: enums.PermissionTypeUnknown, Permission: "Mail.Read"}
	assert.Equal(t, enums.PrivilegeUnranked, classify.Classify(record, table))
}

func TestClassify_IsDeterministic(t *testing.T) {
	table := classify.NewPermissionTable([]classify.Row{
		{Permission: "Mail", GrantType: enums.GrantTypeDelegated, Privilege: enums.PrivilegeMedium},
		{Permission: "Directory.ReadWrite.All", GrantType: enums.GrantTypeApplication, Privilege: enums.PrivilegeHigh},
	})

	records := []models.GrantRecord{
		delegated("Mail.Read"),
		application("Directory.ReadWrite.All"),
		application("Unheard.Of"),
		delegated("Unheard.Of"),
	}

	for _, record := range records {
		first := classify.Classify(record, table)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, classify.Classify(record, table))
		}
	}
}
