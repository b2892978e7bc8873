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

// Package collect enumerates every service principal in the tenant and
// normalizes its delegated and application permission grants into unified
// grant records.
package collect

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/consenthound/consenthound/cache"
	"github.com/consenthound/consenthound/client"
	"github.com/consenthound/consenthound/client/query"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/enums"
	"github.com/consenthound/consenthound/models"
	"github.com/consenthound/consenthound/models/azure"
	"github.com/consenthound/consenthound/panicrecovery"
	"github.com/consenthound/consenthound/pipeline"
)

type Collector struct {
	client            client.AzureClient
	objects           *cache.DirectoryObjectCache
	firstPartyTenants []string
	log               logr.Logger
}

func NewCollector(azClient client.AzureClient, objects *cache.DirectoryObjectCache, log logr.Logger) *Collector {
	return &Collector{
		client:            azClient,
		objects:           objects,
		firstPartyTenants: constants.FirstPartyAppOwnerTenants(),
		log:               log,
	}
}

// Collect streams one grant record per consented permission. Records are
// produced in service principal enumeration order; within a principal,
// delegated grants precede application grants, and within a delegated grant,
// scope tokens keep their original order.
//
// A failure to enumerate the grants of one service principal is logged and
// that principal is skipped; collection continues with the rest. A failure
// to enumerate service principals themselves ends the stream with an error
// result.
func (s *Collector) Collect(ctx context.Context) <-chan client.AzureResult[models.GrantRecord] {
	out := make(chan client.AzureResult[models.GrantRecord])

	go func() {
		defer panicrecovery.PanicRecovery()
		defer close(out)

		params := query.GraphParams{Expand: []string{"appRoleAssignedTo"}}
		count := 0
		for item := range s.client.ListAzureADServicePrincipals(ctx, params) {
			if item.Error != nil {
				s.log.Error(item.Error, "unable to continue enumerating service principals")
				pipeline.Send(ctx.Done(), out, client.AzureResult[models.GrantRecord]{Error: item.Error})
				return
			}

			sp := item.Ok
			s.log.V(2).Info("found service principal", "id", sp.Id, "displayName", sp.DisplayName)
			s.objects.Put(sp.DirectoryObject)

			if ok := s.collectDelegated(ctx, sp, out); !ok {
				return
			}
			if ok := s.collectApplication(ctx, sp, out); !ok {
				return
			}
			count++
		}
		s.log.Info("finished collecting consent grants", "servicePrincipals", count)
	}()

	return out
}

// collectDelegated emits one record per scope token of each OAuth2
// permission grant held by the client. Returns false only when the stream
// consumer went away.
func (s *Collector) collectDelegated(ctx context.Context, sp azure.ServicePrincipal, out chan<- client.AzureResult[models.GrantRecord]) bool {
	firstParty := sp.IsFirstParty(s.firstPartyTenants)

	for item := range s.client.ListAzureADOauth2PermissionGrants(ctx, sp.Id, query.GraphParams{}) {
		if item.Error != nil {
			s.log.Error(item.Error, "unable to list delegated grants; skipping service principal", "servicePrincipal", sp.Id)
			return true
		}

		grant := item.Ok
		permissionType := delegatedPermissionType(grant.ConsentType)
		if permissionType == enums.PermissionTypeUnknown {
			s.log.V(1).Info("unexpected consent type on delegated grant", "grant", grant.Id, "consentType", grant.ConsentType)
		}

		// Display name resolution is best effort; an unresolvable object
		// leaves the name empty and the record is emitted regardless.
		resourceName := ""
		if resource, found := s.objects.Get(ctx, grant.ResourceId); found {
			resourceName = resource.DisplayName
		}

		principalName := ""
		if grant.PrincipalId != "" {
			if principal, found := s.objects.Get(ctx, grant.PrincipalId); found {
				principalName = principal.DisplayName
			}
		}

		for _, scope := range grant.ScopeTokens() {
			record := models.GrantRecord{
				PermissionType:               permissionType,
				ClientObjectId:               sp.Id,
				ClientDisplayName:            sp.DisplayName,
				ResourceObjectId:             grant.ResourceId,
				ResourceDisplayName:          resourceName,
				Permission:                   scope,
				PrincipalObjectId:            grant.PrincipalId,
				PrincipalDisplayName:         principalName,
				MicrosoftRegisteredClientApp: firstParty,
				AppOwnerOrganizationId:       sp.AppOwnerOrganizationId,
			}
			if ok := pipeline.Send(ctx.Done(), out, client.AzureResult[models.GrantRecord]{Ok: record}); !ok {
				return false
			}
		}
	}
	return true
}

// collectApplication emits one record per app role assignment held by the
// client, translating the role id into its declared value via the granting
// resource's role list.
func (s *Collector) collectApplication(ctx context.Context, sp azure.ServicePrincipal, out chan<- client.AzureResult[models.GrantRecord]) bool {
	firstParty := sp.IsFirstParty(s.firstPartyTenants)

	for item := range s.client.ListAzureADAppRoleAssignments(ctx, sp.Id, query.GraphParams{}) {
		if item.Error != nil {
			s.log.Error(item.Error, "unable to list app role assignments; skipping service principal", "servicePrincipal", sp.Id)
			return true
		}

		assignment := item.Ok

		// The assignment only carries the opaque role id; the human-readable
		// value lives on the resource's declared appRoles. Fall back to the
		// raw id when the role is gone or declares no value.
		permission := assignment.AppRoleId
		resourceName := assignment.ResourceDisplayName
		if resource, found := s.objects.Get(ctx, assignment.ResourceId); found {
			if resourceName == "" {
				resourceName = resource.DisplayName
			}
			if role, found := findAppRole(resource.AppRoles, assignment.AppRoleId); found && role.Value != "" {
				permission = role.Value
			}
		}

		record := models.GrantRecord{
			PermissionType:               enums.PermissionTypeApplication,
			ClientObjectId:               sp.Id,
			ClientDisplayName:            sp.DisplayName,
			ResourceObjectId:             assignment.ResourceId,
			ResourceDisplayName:          resourceName,
			Permission:                   permission,
			MicrosoftRegisteredClientApp: firstParty,
			AppOwnerOrganizationId:       sp.AppOwnerOrganizationId,
		}
		if ok := pipeline.Send(ctx.Done(), out, client.AzureResult[models.GrantRecord]{Ok: record}); !ok {
			return false
		}
	}
	return true
}

func delegatedPermissionType(consentType string) enums.PermissionType {
	switch consentType {
	case azure.ConsentTypeAllPrincipals:
		return enums.PermissionTypeDelegatedAllPrincipals
	case azure.ConsentTypePrincipal:
		return enums.PermissionTypeDelegatedPrincipal
	default:
		// Left blank on purpose; undocumented consent types are surfaced
		// as-is in the report rather than guessed at.
		return enums.PermissionTypeUnknown
	}
}

func findAppRole(roles []azure.AppRole, roleId string) (azure.AppRole, bool) {
	for _, role := range roles {
		if role.Id == roleId {
			return role, true
		}
	}
	return azure.AppRole{}, false
}
