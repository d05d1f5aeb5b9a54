// Package core holds the machinery shared by both union strategies: the
// per-instantiation registry, contract checks and visitor dispatch.
package core

import (
	"reflect"
	"sync"
)

type entry struct {
	once    sync.Once
	val     any
	failure any // panic value of a failed build
}

// Registry maps a union type to data derived from its type parameters.
// Every entry is built at most once, on first use, and never changes
// afterwards, so readers need no locking.
type Registry struct {
	entries sync.Map // reflect.Type -> *entry
}

var global Registry

// Load returns the value registered for key, building it with build on first
// use. Concurrent first uses wait for the single build. A build that panics
// is not retried: every later Load panics with the same value.
func Load[V any](key reflect.Type, build func() V) V {
	return LoadFrom(&global, key, build)
}

// LoadFrom is Load against an explicit registry.
func LoadFrom[V any](r *Registry, key reflect.Type, build func() V) V {
	e, ok := r.entries.Load(key)
	if !ok {
		e, _ = r.entries.LoadOrStore(key, &entry{})
	}

	ent := e.(*entry)
	ent.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				ent.failure = r
			}
		}()

		ent.val = build()
	})

	if ent.failure != nil {
		panic(ent.failure)
	}

	return ent.val.(V)
}

// Len reports how many entries have been registered.
func (r *Registry) Len() int {
	n := 0
	r.entries.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}
