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

// Package classify maps grant records to privilege labels using a
// permission classification table.
package classify

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/consenthound/consenthound/client/rest"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/enums"
)

// Row is one classification table entry.
type Row struct {
	Permission string
	GrantType  enums.GrantType
	Privilege  enums.Privilege
}

type tableKey struct {
	permission string
	grantType  enums.GrantType
}

// PermissionTable is the loaded classification table. It is read-only after
// load; classification never mutates it.
type PermissionTable struct {
	rows  []Row
	index map[tableKey]enums.Privilege
}

// NewPermissionTable builds a table from rows. The first row wins when the
// same (permission, grant type) pair appears more than once.
func NewPermissionTable(rows []Row) PermissionTable {
	table := PermissionTable{
		rows:  rows,
		index: make(map[tableKey]enums.Privilege, len(rows)),
	}
	for _, row := range rows {
		key := tableKey{permission: row.Permission, grantType: row.GrantType}
		if _, exists := table.index[key]; !exists {
			table.index[key] = row.Privilege
		}
	}
	return table
}

// Lookup returns the privilege label for an exact (permission, grant type)
// pair.
func (s PermissionTable) Lookup(permission string, grantType enums.GrantType) (enums.Privilege, bool) {
	privilege, found := s.index[tableKey{permission: permission, grantType: grantType}]
	return privilege, found
}

func (s PermissionTable) Len() int {
	return len(s.rows)
}

// ParsePermissionTable reads the CSV row schema Permission,Type,Privilege.
// Header names are matched case-insensitively and may appear in any column
// order; a missing column is a schema error.
func ParsePermissionTable(r io.Reader) (PermissionTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return PermissionTable{}, fmt.Errorf("reading permission table header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var (
		permissionCol, foundPermission = columns["permission"]
		typeCol, foundType             = columns["type"]
		privilegeCol, foundPrivilege   = columns["privilege"]
	)
	if !foundPermission || !foundType || !foundPrivilege {
		return PermissionTable{}, fmt.Errorf("permission table schema mismatch: expected Permission, Type and Privilege columns, got %v", header)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return PermissionTable{}, fmt.Errorf("reading permission table row: %w", err)
		}

		rows = append(rows, Row{
			Permission: strings.TrimSpace(record[permissionCol]),
			GrantType:  enums.GrantType(strings.TrimSpace(record[typeCol])),
			Privilege:  enums.Privilege(strings.TrimSpace(record[privilegeCol])),
		})
	}

	return NewPermissionTable(rows), nil
}

// LoadPermissionTable reads the table from localPath when given, otherwise
// fetches the community default table. Any failure here is fatal for the
// whole report; no classification can happen without a table.
func LoadPermissionTable(ctx context.Context, localPath, proxyUrl string) (PermissionTable, error) {
	if localPath != "" {
		f, err := os.Open(localPath)
		if err != nil {
			return PermissionTable{}, fmt.Errorf("opening permission table %s: %w", localPath, err)
		}
		defer f.Close()
		return ParsePermissionTable(f)
	}

	return fetchPermissionTable(ctx, constants.DefaultPermissionTableUrl, proxyUrl)
}

func fetchPermissionTable(ctx context.Context, tableUrl, proxyUrl string) (PermissionTable, error) {
	httpClient, err := rest.NewHTTPClient(proxyUrl)
	if err != nil {
		return PermissionTable{}, err
	}

	endpoint, err := url.Parse(tableUrl)
	if err != nil {
		return PermissionTable{}, fmt.Errorf("parsing permission table url: %w", err)
	}

	req, err := rest.NewRequest(ctx, http.MethodGet, *endpoint, nil, nil, nil)
	if err != nil {
		return PermissionTable{}, err
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return PermissionTable{}, fmt.Errorf("downloading permission table from %s: %w", tableUrl, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return PermissionTable{}, fmt.Errorf("downloading permission table from %s: %s", tableUrl, res.Status)
	}

	return ParsePermissionTable(res.Body)
}
