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

package client

import (
	"context"
	"fmt"

	"github.com/consenthound/consenthound/client/query"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/models/azure"
)

// List the OAuth2 permission grants a service principal has been granted as
// client https://learn.microsoft.com/en-us/graph/api/serviceprincipal-list-oauth2permissiongrants?view=graph-rest-1.0
func (s *azureClient) ListAzureADOauth2PermissionGrants(ctx context.Context, servicePrincipalId string, params query.GraphParams) <-chan AzureResult[azure.OAuth2PermissionGrant] {
	var (
		out  = make(chan AzureResult[azure.OAuth2PermissionGrant])
		path = fmt.Sprintf("/%s/servicePrincipals/%s/oauth2PermissionGrants", constants.GraphApiVersion, servicePrincipalId)
	)

	if params.Top == 0 {
		params.Top = 99
	}

	go getAzureObjectList[azure.OAuth2PermissionGrant](s.msgraph, ctx, path, params, out)

	return out
}
