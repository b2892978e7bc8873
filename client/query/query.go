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

package query

import (
	"fmt"
	"net/url"
	"strings"
)

// GraphParams models the OData query parameters accepted by Microsoft Graph
// list endpoints.
type GraphParams struct {
	Count  bool
	Expand []string
	Filter string
	Search string
	Select []string
	Top    int32
}

func (s GraphParams) AsMap() url.Values {
	params := make(url.Values)

	if s.Count {
		params.Set("$count", "true")
	}
	if len(s.Expand) > 0 {
		params.Set("$expand", strings.Join(s.Expand, ","))
	}
	if s.Filter != "" {
		params.Set("$filter", s.Filter)
	}
	if s.Search != "" {
		params.Set("$search", s.Search)
	}
	if len(s.Select) > 0 {
		params.Set("$select", strings.Join(s.Select, ","))
	}
	if s.Top > 0 {
		params.Set("$top", fmt.Sprintf("%d", s.Top))
	}

	return params
}

// NeedsEventualConsistency reports whether the parameter set requires the
// ConsistencyLevel: eventual header on the request.
func (s GraphParams) NeedsEventualConsistency() bool {
	return s.Count || s.Search != ""
}

// Headers returns the request headers implied by the parameter set.
func (s GraphParams) Headers() map[string]string {
	headers := make(map[string]string)
	if s.NeedsEventualConsistency() {
		headers["ConsistencyLevel"] = "eventual"
	}
	return headers
}
