// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonld

import (
	"sync"

	"github.com/dgraph-io/ristretto/v2"
)

// ContextResolver dereferences remote `@context` documents on behalf of the
// context processor and caches the result, so that a later resolution of the
// same remote context can be served from the cache instead of the document
// loader. Concurrent misses on the same URI each call the loader, and the
// cache may decline to admit an entry, in which case the next resolution
// loads the document again.
//
// A ContextResolver may be shared across JsonLdOptions instances - that's
// the point of exposing it as JsonLdOptions.ContextResolver - as long as
// they all use the same underlying DocumentLoader; its cache is backed by
// ristretto, which is safe for concurrent reads and writes without any
// locking on the caller's part.
type ContextResolver struct {
	loader DocumentLoader
	docs   *ristretto.Cache[string, *RemoteDocument]
}

// NewContextResolver creates a resolver backed by its own cache, wrapping
// the given document loader.
func NewContextResolver(loader DocumentLoader) *ContextResolver {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *RemoteDocument]{
		NumCounters: 10_000,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		// ristretto only fails to construct on invalid config, which never
		// happens with the fixed values above.
		panic(err)
	}
	return &ContextResolver{loader: loader, docs: cache}
}

func (r *ContextResolver) resolveDocument(uri string) (*RemoteDocument, error) {
	if rd, ok := r.docs.Get(uri); ok {
		return rd, nil
	}
	rd, err := r.loader.LoadDocument(uri)
	if err != nil {
		return nil, err
	}
	r.docs.Set(uri, rd, 1)
	r.docs.Wait()
	return rd, nil
}

var (
	defaultResolvers   sync.Map // DocumentLoader -> *ContextResolver
	defaultResolversMu sync.Mutex
)

// defaultContextResolver returns (creating if necessary) the process-wide
// resolver for a given loader, so callers that never set
// JsonLdOptions.ContextResolver explicitly still get cross-call caching.
func defaultContextResolver(loader DocumentLoader) *ContextResolver {
	if v, ok := defaultResolvers.Load(loader); ok {
		return v.(*ContextResolver)
	}
	defaultResolversMu.Lock()
	defer defaultResolversMu.Unlock()
	if v, ok := defaultResolvers.Load(loader); ok {
		return v.(*ContextResolver)
	}
	resolver := NewContextResolver(loader)
	defaultResolvers.Store(loader, resolver)
	return resolver
}

// inverseContextCache is the LRU described in the context processor's
// caching contract: a map from active-context snapshot ID to its built
// inverse context, shared process-wide so that compaction produces
// identical output whether or not the cache was pre-warmed.
type inverseContextCache struct {
	cache *ristretto.Cache[string, map[string]interface{}]
}

func newInverseContextCache() *inverseContextCache {
	cache, err := ristretto.NewCache(&ristretto.Config[string, map[string]interface{}]{
		NumCounters: 10_000,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		panic(err)
	}
	return &inverseContextCache{cache: cache}
}

func (c *inverseContextCache) get(id string) (map[string]interface{}, bool) {
	return c.cache.Get(id)
}

func (c *inverseContextCache) put(id string, inverse map[string]interface{}) {
	c.cache.Set(id, inverse, 1)
	c.cache.Wait()
}

var globalInverseContextCache = newInverseContextCache()
