package csmap

import (
	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

type ConcurrentSwissMap[K comparable, V any] struct {
	m *csmap.CsMap[K, V]
}

func Create[K comparable, V any](size uint64) *ConcurrentSwissMap[K, V] {
	if size == 0 {
		return &ConcurrentSwissMap[K, V]{m: csmap.Create[K, V]()}
	}
	return &ConcurrentSwissMap[K, V]{m: csmap.Create[K, V](csmap.WithSize[K, V](size))}
}

func (c *ConcurrentSwissMap[K, V]) Store(key K, value V) {
	c.m.Store(key, value)
}

func (c *ConcurrentSwissMap[K, V]) Load(key K) (V, bool) {
	return c.m.Load(key)
}

func (c *ConcurrentSwissMap[K, V]) Delete(key K) bool {
	return c.m.Delete(key)
}

func (c *ConcurrentSwissMap[K, V]) Has(key K) bool {
	return c.m.Has(key)
}

func (c *ConcurrentSwissMap[K, V]) Count() int {
	return c.m.Count()
}

// Range calls f for every entry until f returns true.
func (c *ConcurrentSwissMap[K, V]) Range(f func(key K, value V) (stop bool)) {
	c.m.Range(f)
}

// Snapshot copies the entries into a plain map.
func (c *ConcurrentSwissMap[K, V]) Snapshot() map[K]V {
	result := make(map[K]V, c.m.Count())
	c.m.Range(func(key K, value V) bool {
		result[key] = value
		return false
	})
	return result
}
