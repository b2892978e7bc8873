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

package constants

import "fmt"

const (
	Name        string = "consenthound"
	DisplayName string = "ConsentHound"
	Description string = "Audits delegated and application consent grants in Microsoft Entra ID"
	Version     string = "v0.3.0"

	Company   string = "ConsentHound Contributors"
	AuthorRef string = "Created by the ConsentHound Contributors"
)

const (
	GraphApiVersion string = "v1.0"
	GraphBaseUrl    string = "https://graph.microsoft.com"
	LoginBaseUrl    string = "https://login.microsoftonline.com"
)

// DefaultPermissionTableUrl is the well-known location of the community
// permission-to-privilege classification table used when no local table is
// supplied on the command line.
const DefaultPermissionTableUrl string = "https://raw.githubusercontent.com/mepples21/azureadconfigassessment/master/permissiontable.csv"

// Tenants that own first-party, Microsoft-registered applications. A service
// principal whose appOwnerOrganizationId matches one of these is flagged as a
// Microsoft-registered client app on every grant record it produces.
const (
	MicrosoftServicesTenantId string = "f8cdef31-a31e-4b4a-93e4-5f571e91255a"
	MicrosoftCorpTenantId     string = "72f988bf-86f1-41af-91ab-2d7cd011db47"
)

func FirstPartyAppOwnerTenants() []string {
	return []string{
		MicrosoftServicesTenantId,
		MicrosoftCorpTenantId,
	}
}

func UserAgent() string {
	return fmt.Sprintf("%s/%s", Name, Version)
}
