// Package registry provides the time-bounded in-memory stores backing the
// handshake: verification tokens, temporary credentials and sessions each
// get their own Registry. Nothing here survives a restart on purpose.
package registry

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotFound reports that the key has no entry at all.
	ErrNotFound = errors.New("registry: not found")
	// ErrExpired reports that the key exists but its entry has passed its
	// expiry. GetLive never deletes; callers decide whether to Remove.
	ErrExpired = errors.New("registry: expired")
)

// Registry is a concurrent map of opaque keys to values with an expiry
// instant attached at insert time. Operations on different keys never
// contend; operations on the same key are atomic with respect to each
// other. Liveness is evaluated against the clock on every access, so
// correctness never depends on the sweeper having run.
type Registry[K comparable, V any] struct {
	entries sync.Map // map[K]entry[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// New returns an empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{}
}

// Put stores value under key with an expiry of now + ttl, replacing any
// existing entry. Callers mint fresh random keys, so replacement is not
// exercised in normal operation.
func (r *Registry[K, V]) Put(key K, value V, ttl time.Duration) {
	r.entries.Store(key, entry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}

// GetLive returns the value for key if the entry is live, i.e. the current
// time is strictly before its expiry. It distinguishes a missing entry
// (ErrNotFound) from one that exists but has expired (ErrExpired) and never
// mutates the registry either way.
func (r *Registry[K, V]) GetLive(key K) (V, error) {
	var zero V

	v, ok := r.entries.Load(key)
	if !ok {
		return zero, ErrNotFound
	}

	e := v.(entry[V])
	if !time.Now().Before(e.expiresAt) {
		return zero, ErrExpired
	}
	return e.value, nil
}

// Remove unconditionally deletes the entry for key. Used when a lookup
// discovers an expired entry; removing a missing key is a no-op.
func (r *Registry[K, V]) Remove(key K) {
	r.entries.Delete(key)
}

// Sweep deletes every entry whose expiry is at or before now and returns
// how many were removed. Only the reaper calls this; it bounds memory
// growth and is not needed for correctness.
func (r *Registry[K, V]) Sweep(now time.Time) int {
	removed := 0
	r.entries.Range(func(key, value any) bool {
		if !now.Before(value.(entry[V]).expiresAt) {
			r.entries.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Len counts the entries currently stored, live or not. It walks the map,
// which is fine at the sizes a scrape or readiness probe sees.
func (r *Registry[K, V]) Len() int {
	n := 0
	r.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
