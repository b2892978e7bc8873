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

package collect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/consenthound/consenthound/cache"
	"github.com/consenthound/consenthound/client"
	"github.com/consenthound/consenthound/client/mocks"
	"github.com/consenthound/consenthound/collect"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/enums"
	"github.com/consenthound/consenthound/models"
	"github.com/consenthound/consenthound/models/azure"
)

func results[T any](items ...client.AzureResult[T]) <-chan client.AzureResult[T] {
	out := make(chan client.AzureResult[T], len(items)+1)
	for _, item := range items {
		out <- item
	}
	close(out)
	return out
}

func oks[T any](items ...T) <-chan client.AzureResult[T] {
	wrapped := make([]client.AzureResult[T], 0, len(items))
	for _, item := range items {
		wrapped = append(wrapped, client.AzureResult[T]{Ok: item})
	}
	return results(wrapped...)
}

func servicePrincipal(id, displayName string) azure.ServicePrincipal {
	return azure.ServicePrincipal{
		DirectoryObject: azure.DirectoryObject{
			Id:          id,
			DisplayName: displayName,
			ODataType:   "#microsoft.graph.servicePrincipal",
		},
	}
}

func collectAll(t *testing.T, mockClient *mocks.MockAzureClient) []models.GrantRecord {
	t.Helper()

	objects := cache.NewDirectoryObjectCache(mockClient, logr.Discard())
	collector := collect.NewCollector(mockClient, objects, logr.Discard())

	var records []models.GrantRecord
	for item := range collector.Collect(context.Background()) {
		require.NoError(t, item.Error)
		records = append(records, item.Ok)
	}
	return records
}

func TestCollect_DelegatedScopeTokensPreserveOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	sp := servicePrincipal("sp-1", "Example App")
	grant := azure.OAuth2PermissionGrant{
		Id:          "grant-1",
		ClientId:    "sp-1",
		ConsentType: azure.ConsentTypeAllPrincipals,
		ResourceId:  "res-1",
		Scope:       "  User.Read  Mail.Read ",
	}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(sp))
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-1", gomock.Any()).Return(oks(grant))
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-1", gomock.Any()).Return(oks[azure.AppRoleAssignment]())
	mockClient.EXPECT().
		GetAzureADDirectoryObject(gomock.Any(), "res-1").
		Return(azure.DirectoryObject{Id: "res-1", DisplayName: "Microsoft Graph"}, nil).
		Times(1)

	records := collectAll(t, mockClient)

	require.Len(t, records, 2)
	assert.Equal(t, "User.Read", records[0].Permission)
	assert.Equal(t, "Mail.Read", records[1].Permission)
	for _, record := range records {
		assert.Equal(t, enums.PermissionTypeDelegatedAllPrincipals, record.PermissionType)
		assert.Equal(t, "sp-1", record.ClientObjectId)
		assert.Equal(t, "Example App", record.ClientDisplayName)
		assert.Equal(t, "res-1", record.ResourceObjectId)
		assert.Equal(t, "Microsoft Graph", record.ResourceDisplayName)
		assert.Empty(t, record.PrincipalObjectId)
		assert.Empty(t, record.PrincipalDisplayName)
	}
}

func TestCollect_PrincipalConsentResolvesPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	sp := servicePrincipal("sp-1", "Example App")
	grant := azure.OAuth2PermissionGrant{
		ConsentType: azure.ConsentTypePrincipal,
		PrincipalId: "user-1",
		ResourceId:  "res-1",
		Scope:       "Calendars.Read",
	}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(sp))
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-1", gomock.Any()).Return(oks(grant))
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-1", gomock.Any()).Return(oks[azure.AppRoleAssignment]())
	mockClient.EXPECT().
		GetAzureADDirectoryObject(gomock.Any(), "res-1").
		Return(azure.DirectoryObject{}, client.ErrObjectNotFound)
	mockClient.EXPECT().
		GetAzureADDirectoryObject(gomock.Any(), "user-1").
		Return(azure.DirectoryObject{Id: "user-1", DisplayName: "Test User"}, nil)

	records := collectAll(t, mockClient)

	require.Len(t, records, 1)
	assert.Equal(t, enums.PermissionTypeDelegatedPrincipal, records[0].PermissionType)
	assert.Equal(t, "user-1", records[0].PrincipalObjectId)
	assert.Equal(t, "Test User", records[0].PrincipalDisplayName)
	// The resource no longer resolves; the record is still emitted with an
	// empty display name.
	assert.Equal(t, "res-1", records[0].ResourceObjectId)
	assert.Empty(t, records[0].ResourceDisplayName)
}

func TestCollect_UnexpectedConsentTypeYieldsBlankPermissionType(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	sp := servicePrincipal("sp-1", "Example App")
	grant := azure.OAuth2PermissionGrant{
		ConsentType: "SomethingElse",
		ResourceId:  "sp-1", // collides with the seeded client on purpose
		Scope:       "User.Read",
	}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(sp))
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-1", gomock.Any()).Return(oks(grant))
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-1", gomock.Any()).Return(oks[azure.AppRoleAssignment]())

	records := collectAll(t, mockClient)

	require.Len(t, records, 1)
	assert.Equal(t, enums.PermissionTypeUnknown, records[0].PermissionType)
}

func TestCollect_ApplicationGrantTranslatesAppRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	sp := servicePrincipal("sp-1", "Example App")
	assignment := azure.AppRoleAssignment{
		AppRoleId:   "role-1",
		PrincipalId: "sp-1",
		ResourceId:  "res-1",
	}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(sp))
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-1", gomock.Any()).Return(oks[azure.OAuth2PermissionGrant]())
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-1", gomock.Any()).Return(oks(assignment))
	mockClient.EXPECT().
		GetAzureADDirectoryObject(gomock.Any(), "res-1").
		Return(azure.DirectoryObject{
			Id:          "res-1",
			DisplayName: "Microsoft Graph",
			AppRoles: []azure.AppRole{
				{Id: "role-1", Value: "Mail.Read", DisplayName: "Read mail in all mailboxes"},
			},
		}, nil)

	records := collectAll(t, mockClient)

	require.Len(t, records, 1)
	assert.Equal(t, enums.PermissionTypeApplication, records[0].PermissionType)
	assert.Equal(t, "Mail.Read", records[0].Permission)
	assert.Equal(t, "Microsoft Graph", records[0].ResourceDisplayName)
	assert.Empty(t, records[0].PrincipalDisplayName)
}

func TestCollect_UnknownAppRoleFallsBackToRawRoleId(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	sp := servicePrincipal("sp-1", "Example App")
	assignment := azure.AppRoleAssignment{
		AppRoleId:  "00000000-0000-0000-0000-000000000000",
		ResourceId: "res-1",
	}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(sp))
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-1", gomock.Any()).Return(oks[azure.OAuth2PermissionGrant]())
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-1", gomock.Any()).Return(oks(assignment))
	mockClient.EXPECT().
		GetAzureADDirectoryObject(gomock.Any(), "res-1").
		Return(azure.DirectoryObject{
			Id:       "res-1",
			AppRoles: []azure.AppRole{{Id: "role-1", Value: "Mail.Read"}},
		}, nil)

	records := collectAll(t, mockClient)

	require.Len(t, records, 1)
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", records[0].Permission)
}

func TestCollect_FirstPartyFlagIsCopiedOntoEveryRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	sp := servicePrincipal("sp-1", "Office Something")
	sp.AppOwnerOrganizationId = constants.MicrosoftServicesTenantId
	grant := azure.OAuth2PermissionGrant{
		ConsentType: azure.ConsentTypeAllPrincipals,
		ResourceId:  "sp-1",
		Scope:       "User.Read Mail.Read",
	}
	assignment := azure.AppRoleAssignment{AppRoleId: "role-1", ResourceId: "sp-1"}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(sp))
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-1", gomock.Any()).Return(oks(grant))
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-1", gomock.Any()).Return(oks(assignment))

	records := collectAll(t, mockClient)

	require.Len(t, records, 3)
	for _, record := range records {
		assert.True(t, record.MicrosoftRegisteredClientApp)
		assert.Equal(t, constants.MicrosoftServicesTenantId, record.AppOwnerOrganizationId)
	}
}

func TestCollect_DelegatedRecordsPrecedeApplicationRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	sp := servicePrincipal("sp-1", "Example App")
	grant := azure.OAuth2PermissionGrant{
		ConsentType: azure.ConsentTypeAllPrincipals,
		ResourceId:  "sp-1",
		Scope:       "User.Read",
	}
	assignment := azure.AppRoleAssignment{AppRoleId: "role-1", ResourceId: "sp-1"}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(sp))
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-1", gomock.Any()).Return(oks(grant))
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-1", gomock.Any()).Return(oks(assignment))

	records := collectAll(t, mockClient)

	require.Len(t, records, 2)
	assert.Equal(t, enums.PermissionTypeDelegatedAllPrincipals, records[0].PermissionType)
	assert.Equal(t, enums.PermissionTypeApplication, records[1].PermissionType)
}

func TestCollect_GrantEnumerationFailureSkipsPrincipalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	broken := servicePrincipal("sp-broken", "Broken App")
	healthy := servicePrincipal("sp-ok", "Healthy App")
	grant := azure.OAuth2PermissionGrant{
		ConsentType: azure.ConsentTypeAllPrincipals,
		ResourceId:  "sp-ok",
		Scope:       "User.Read",
	}

	mockClient.EXPECT().ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).Return(oks(broken, healthy))
	mockClient.EXPECT().
		ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-broken", gomock.Any()).
		Return(results(client.AzureResult[azure.OAuth2PermissionGrant]{Error: errors.New("boom")}))
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-broken", gomock.Any()).Return(oks[azure.AppRoleAssignment]())
	mockClient.EXPECT().ListAzureADOauth2PermissionGrants(gomock.Any(), "sp-ok", gomock.Any()).Return(oks(grant))
	mockClient.EXPECT().ListAzureADAppRoleAssignments(gomock.Any(), "sp-ok", gomock.Any()).Return(oks[azure.AppRoleAssignment]())

	records := collectAll(t, mockClient)

	require.Len(t, records, 1)
	assert.Equal(t, "sp-ok", records[0].ClientObjectId)
}

func TestCollect_ServicePrincipalEnumerationFailureEndsTheStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockAzureClient(ctrl)

	mockClient.EXPECT().
		ListAzureADServicePrincipals(gomock.Any(), gomock.Any()).
		Return(results(client.AzureResult[azure.ServicePrincipal]{Error: errors.New("throttled")}))

	objects := cache.NewDirectoryObjectCache(mockClient, logr.Discard())
	collector := collect.NewCollector(mockClient, objects, logr.Discard())

	var errs []error
	for item := range collector.Collect(context.Background()) {
		errs = append(errs, item.Error)
	}

	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "throttled")
}
