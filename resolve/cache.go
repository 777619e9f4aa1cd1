package resolve

import (
	"fmt"

	"golang.org/x/sync/singleflight"
)

// CachingProvider wraps a Provider whose GetDependencies calls are
// expensive (typically because they hit a network index) with a
// per-candidate dependency cache and request deduplication. Many
// goroutines may ask for the same candidate's dependencies concurrently;
// only one should actually do the work, which is exactly what
// singleflight.Group gives us. Every other method is forwarded unchanged.
//
// A single Resolve call never calls the same Provider method twice
// concurrently, so within one resolve this cache only saves repeat
// lookups, e.g. when a candidate is tried again after a backjump and its
// dependencies are asked for a second time. It becomes load-bearing once
// a Provider is shared across multiple concurrent Resolution instances
// (one per goroutine), since each State owns its own containers
// independently.
type CachingProvider[RT any, CT comparable, KT comparable, PT any] struct {
	inner Provider[RT, CT, KT, PT]
	group singleflight.Group

	depsMu    chan struct{} // binary semaphore guarding depsCache
	depsCache map[string][]RT
}

// NewCachingProvider wraps inner with a dependency-lookup cache.
// FindMatches is neither cached nor deduplicated: its result depends on the caller-supplied requirements/incompatibilities
// views, which change from call to call within a single resolve.
func NewCachingProvider[RT any, CT comparable, KT comparable, PT any](inner Provider[RT, CT, KT, PT]) *CachingProvider[RT, CT, KT, PT] {
	c := &CachingProvider[RT, CT, KT, PT]{
		inner:     inner,
		depsMu:    make(chan struct{}, 1),
		depsCache: make(map[string][]RT),
	}
	c.depsMu <- struct{}{}
	return c
}

func (c *CachingProvider[RT, CT, KT, PT]) IdentifyRequirement(r RT) KT { return c.inner.IdentifyRequirement(r) }
func (c *CachingProvider[RT, CT, KT, PT]) IdentifyCandidate(cd CT) KT  { return c.inner.IdentifyCandidate(cd) }

func (c *CachingProvider[RT, CT, KT, PT]) GetPreference(id KT, resolutions *OrderedMapping[KT, CT], criteria *OrderedMapping[KT, Criterion[RT, CT, KT]], backtrackCauses []RequirementInformation[RT, CT]) PT {
	return c.inner.GetPreference(id, resolutions, criteria, backtrackCauses)
}

func (c *CachingProvider[RT, CT, KT, PT]) FindMatches(id KT, requirements RequirementsView[RT, CT, KT], incompatibilities IncompatibilitiesView[RT, CT, KT]) IterableView[CT] {
	return c.inner.FindMatches(id, requirements, incompatibilities)
}

func (c *CachingProvider[RT, CT, KT, PT]) IsSatisfiedBy(r RT, cd CT) bool {
	return c.inner.IsSatisfiedBy(r, cd)
}

// NarrowRequirementSelection forwards to the wrapped Provider's narrowing
// hook when it implements one, otherwise it is the identity function.
func (c *CachingProvider[RT, CT, KT, PT]) NarrowRequirementSelection(ids []KT) []KT {
	if np, ok := any(c.inner).(NarrowingProvider[RT, CT, KT]); ok {
		return np.NarrowRequirementSelection(ids)
	}
	return ids
}

// GetDependencies deduplicates concurrent lookups for the same candidate
// via singleflight, then remembers the result for the lifetime of this
// CachingProvider.
func (c *CachingProvider[RT, CT, KT, PT]) GetDependencies(cd CT) []RT {
	key := fmt.Sprintf("%v", cd)

	<-c.depsMu
	if cached, ok := c.depsCache[key]; ok {
		c.depsMu <- struct{}{}
		return cached
	}
	c.depsMu <- struct{}{}

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		return c.inner.GetDependencies(cd), nil
	})
	deps := v.([]RT)

	<-c.depsMu
	c.depsCache[key] = deps
	c.depsMu <- struct{}{}

	return deps
}
