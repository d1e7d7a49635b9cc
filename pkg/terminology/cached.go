package terminology

import (
	"context"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/cache"
	"github.com/gofhir/catalog/pkg/schema"
)

// Cached memoizes membership answers of another provider. Provider errors
// are not cached, so an unavailable provider is retried on the next call.
type Cached struct {
	inner Provider
	cache *cache.LRU[memberKey, memberAnswer]
}

type memberKey struct {
	valueSet string
	system   string
	code     string
}

type memberAnswer struct {
	member bool
	found  bool
}

// NewCached wraps inner with an LRU of the given capacity.
func NewCached(inner Provider, capacity int) *Cached {
	return &Cached{inner: inner, cache: cache.New[memberKey, memberAnswer](capacity)}
}

// MemberOf implements Provider. Membership does not depend on strength, so
// answers are shared across strengths.
func (c *Cached) MemberOf(ctx context.Context, valueSet string, strength schema.BindingStrength, cv model.CodeValue) (bool, bool, error) {
	key := memberKey{valueSet: stripVersion(valueSet), system: cv.System, code: cv.Code}
	if a, ok := c.cache.Get(key); ok {
		return a.member, a.found, nil
	}
	member, found, err := c.inner.MemberOf(ctx, valueSet, strength, cv)
	if err != nil {
		return false, false, err
	}
	c.cache.Put(key, memberAnswer{member: member, found: found})
	return member, found, nil
}

// Stats returns the cache counters.
func (c *Cached) Stats() cache.Stats {
	return c.cache.Stats()
}

// Purge drops every cached answer, e.g. after loading more terminology
// into the wrapped provider.
func (c *Cached) Purge() {
	c.cache.Purge()
}

var _ Provider = (*Cached)(nil)
