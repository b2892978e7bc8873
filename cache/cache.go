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

// Package cache provides the per-invocation directory object cache used to
// avoid redundant remote lookups when the same resource or principal is
// referenced by multiple grants.
package cache

import (
	"context"
	"fmt"

	gcache "github.com/Code-Hex/go-generics-cache"
	"github.com/go-logr/logr"

	"github.com/consenthound/consenthound/models/azure"
)

// Resolver is the single remote operation the cache depends on.
type Resolver interface {
	GetAzureADDirectoryObject(ctx context.Context, objectId string) (azure.DirectoryObject, error)
}

// DirectoryObjectCache is a lazy read-through cache from object id to
// resolved directory object. It is scoped to one report run: entries are
// never evicted and failed lookups are not cached, so every miss retries the
// remote call on the next reference. Construct one per run and inject it;
// there is no process-wide instance.
type DirectoryObjectCache struct {
	resolver Resolver
	objects  *gcache.Cache[string, azure.DirectoryObject]

	// byKind is a secondary index keyed by object kind and id, kept for
	// diagnostics.
	byKind *gcache.Cache[string, azure.DirectoryObject]

	log logr.Logger
}

func NewDirectoryObjectCache(resolver Resolver, log logr.Logger) *DirectoryObjectCache {
	return &DirectoryObjectCache{
		resolver: resolver,
		objects:  gcache.New[string, azure.DirectoryObject](),
		byKind:   gcache.New[string, azure.DirectoryObject](),
		log:      log,
	}
}

// Get returns the directory object for the given id, fetching it remotely on
// a cache miss. The second return value is false when the object does not
// resolve (deleted, inaccessible, or malformed id).
func (s *DirectoryObjectCache) Get(ctx context.Context, objectId string) (azure.DirectoryObject, bool) {
	if object, found := s.objects.Get(objectId); found {
		return object, true
	}

	object, err := s.resolver.GetAzureADDirectoryObject(ctx, objectId)
	if err != nil {
		s.log.V(2).Info("unable to resolve directory object", "objectId", objectId, "reason", err.Error())
		return azure.DirectoryObject{}, false
	}

	s.Put(object)
	return object, true
}

// Put seeds the cache with an already-resolved object, e.g. service
// principals seen during enumeration.
func (s *DirectoryObjectCache) Put(object azure.DirectoryObject) {
	if object.Id == "" {
		return
	}
	s.objects.Set(object.Id, object)
	s.byKind.Set(fmt.Sprintf("%s/%s", object.Kind(), object.Id), object)
}

// Len reports the number of cached objects.
func (s *DirectoryObjectCache) Len() int {
	return len(s.objects.Keys())
}
