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

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/client.go -package=mocks . AzureClient

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/golang-jwt/jwt/v5"

	"github.com/consenthound/consenthound/client/query"
	"github.com/consenthound/consenthound/client/rest"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/models/azure"
	"github.com/consenthound/consenthound/panicrecovery"
	"github.com/consenthound/consenthound/pipeline"
)

// AzureClient is the read-only Microsoft Graph surface the audit is built on.
type AzureClient interface {
	ListAzureADServicePrincipals(ctx context.Context, params query.GraphParams) <-chan AzureResult[azure.ServicePrincipal]
	ListAzureADOauth2PermissionGrants(ctx context.Context, servicePrincipalId string, params query.GraphParams) <-chan AzureResult[azure.OAuth2PermissionGrant]
	ListAzureADAppRoleAssignments(ctx context.Context, servicePrincipalId string, params query.GraphParams) <-chan AzureResult[azure.AppRoleAssignment]
	GetAzureADDirectoryObject(ctx context.Context, objectId string) (azure.DirectoryObject, error)
	TenantInfo() azure.Tenant
	CloseIdleConnections()
}

// AzureResult carries one listed item or the error that ended the stream.
type AzureResult[T any] struct {
	Error error
	Ok    T
}

type azureClient struct {
	msgraph rest.RestClient
	tenant  azure.Tenant
}

// NewClient connects to Microsoft Graph with the given credential and
// resolves the tenant identity of the session from the issued access token
// and the organization endpoint.
func NewClient(ctx context.Context, credential azcore.TokenCredential, proxyUrl string) (AzureClient, error) {
	msgraph, err := rest.NewRestClient(constants.GraphBaseUrl, credential, proxyUrl)
	if err != nil {
		return nil, err
	}

	client := &azureClient{msgraph: msgraph}
	if client.tenant, err = resolveSessionTenant(ctx, msgraph); err != nil {
		return nil, err
	}

	return client, nil
}

// resolveSessionTenant extracts the tenant id from the access token's tid
// claim and enriches it with the organization's display name. The token is
// one we just received from the identity platform, so an unverified parse is
// acceptable for claim extraction; this must never be used to authenticate
// inbound requests.
func resolveSessionTenant(ctx context.Context, msgraph rest.RestClient) (azure.Tenant, error) {
	var tenant azure.Tenant

	token, err := msgraph.Token(ctx)
	if err != nil {
		return tenant, fmt.Errorf("testing graph connection: %w", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token.Token, claims); err != nil {
		return tenant, fmt.Errorf("parsing access token claims: %w", err)
	}
	if tid, ok := claims["tid"].(string); ok {
		tenant.TenantId = tid
	}

	// Display name is nice to have; Organization.Read.All may not be granted.
	res, err := msgraph.Get(ctx, fmt.Sprintf("/%s/organization", constants.GraphApiVersion), nil, nil)
	if err != nil {
		return tenant, nil
	}

	var orgs struct {
		Value []struct {
			Id          string `json:"id"`
			DisplayName string `json:"displayName"`
		} `json:"value"`
	}
	if err := rest.Decode(res.Body, &orgs); err == nil && len(orgs.Value) > 0 {
		tenant.DisplayName = orgs.Value[0].DisplayName
		if tenant.TenantId == "" {
			tenant.TenantId = orgs.Value[0].Id
		}
	}

	return tenant, nil
}

func (s *azureClient) TenantInfo() azure.Tenant {
	return s.tenant
}

func (s *azureClient) CloseIdleConnections() {
	s.msgraph.CloseIdleConnections()
}

type azureListResponse[T any] struct {
	Context  string `json:"@odata.context,omitempty"`
	Count    int    `json:"@odata.count,omitempty"`
	NextLink string `json:"@odata.nextLink,omitempty"`
	Value    []T    `json:"value"`
}

// getAzureObjectList streams every page of a Graph list endpoint into out,
// following @odata.nextLink until exhausted. The first failure is emitted as
// an error result and ends the stream.
func getAzureObjectList[T any](msgraph rest.RestClient, ctx context.Context, path string, params query.GraphParams, out chan AzureResult[T]) {
	defer panicrecovery.PanicRecovery()
	defer close(out)

	nextLink := ""
	for {
		var (
			list azureListResponse[T]
			res  *http.Response
			err  error
		)

		if nextLink == "" {
			res, err = msgraph.Get(ctx, path, params.AsMap(), params.Headers())
		} else {
			res, err = getNextPage(msgraph, ctx, nextLink, params.Headers())
		}
		if err != nil {
			pipeline.Send(ctx.Done(), out, AzureResult[T]{Error: err})
			return
		}

		if err := rest.Decode(res.Body, &list); err != nil {
			pipeline.Send(ctx.Done(), out, AzureResult[T]{Error: fmt.Errorf("decoding response for %s: %w", path, err)})
			return
		}

		for _, item := range list.Value {
			if ok := pipeline.Send(ctx.Done(), out, AzureResult[T]{Ok: item}); !ok {
				return
			}
		}

		if list.NextLink == "" {
			return
		}
		nextLink = list.NextLink
	}
}

func getNextPage(msgraph rest.RestClient, ctx context.Context, nextLink string, headers map[string]string) (*http.Response, error) {
	endpoint, err := url.Parse(nextLink)
	if err != nil {
		return nil, fmt.Errorf("parsing nextLink: %w", err)
	}

	req, err := rest.NewRequest(ctx, http.MethodGet, *endpoint, nil, nil, headers)
	if err != nil {
		return nil, err
	}
	return msgraph.Send(req)
}
