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
	"errors"
	"fmt"
	"net/http"

	"github.com/consenthound/consenthound/client/rest"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/models/azure"
)

// ErrObjectNotFound is returned when a referenced directory object no longer
// resolves, e.g. because it was deleted after the grant was recorded.
var ErrObjectNotFound = errors.New("directory object not found")

// Get a directory object by id https://learn.microsoft.com/en-us/graph/api/directoryobject-get?view=graph-rest-1.0
func (s *azureClient) GetAzureADDirectoryObject(ctx context.Context, objectId string) (azure.DirectoryObject, error) {
	var (
		object azure.DirectoryObject
		path   = fmt.Sprintf("/%s/directoryObjects/%s", constants.GraphApiVersion, objectId)
	)

	res, err := s.msgraph.Get(ctx, path, nil, nil)
	if err != nil {
		var statusErr rest.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return object, fmt.Errorf("%w: %s", ErrObjectNotFound, objectId)
		}
		return object, err
	}

	if err := rest.Decode(res.Body, &object); err != nil {
		return object, fmt.Errorf("decoding directory object %s: %w", objectId, err)
	}
	return object, nil
}
