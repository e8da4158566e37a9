package collection

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcoll/lib/kv"
)

// HashMap is the unordered map facade over the flat hash table.
// Iteration order is deliberately unstable.
type HashMap[K comparable, V any] struct {
	engine *kv.FlatMap[K, V]
	name   string
}

func (m *HashMap[K, V]) Name() string { return m.name }

func (m *HashMap[K, V]) Put(key K, val V) bool {
	before := m.engine.Len()
	if err := m.engine.Put(key, val); err != nil {
		return false
	}
	return m.engine.Len() > before
}

func (m *HashMap[K, V]) Get(key K) (V, bool) {
	return m.engine.Get(key)
}

func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	return m.engine.Delete(key)
}

func (m *HashMap[K, V]) Foreach(action func(key K, val V) bool) {
	m.engine.Foreach(func(i uint64, key K, val V) bool {
		return action(key, val)
	})
}

func (m *HashMap[K, V]) Keys() []K {
	return lo.Map(collectPairs[K, V](m), func(p kvPair[K, V], _ int) K { return p.key })
}

func (m *HashMap[K, V]) Values() []V {
	return lo.Map(collectPairs[K, V](m), func(p kvPair[K, V], _ int) V { return p.val })
}

func (m *HashMap[K, V]) Len() int64 { return m.engine.Len() }

func (m *HashMap[K, V]) Purge() { m.engine.Clear() }

func (m *HashMap[K, V]) String() string {
	return formatPairs(m.name, collectPairs[K, V](m))
}

type HashMapOpt func(*hashMapConfig)

type hashMapConfig struct {
	capacity uint32
}

func WithHashMapCapacity(capacity uint32) HashMapOpt {
	return func(cfg *hashMapConfig) {
		if capacity > 0 {
			cfg.capacity = capacity
		}
	}
}

func NewHashMap[K comparable, V any](name string, opts ...HashMapOpt) *HashMap[K, V] {
	cfg := &hashMapConfig{capacity: 32}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return &HashMap[K, V]{
		engine: kv.NewFlatMap[K, V](cfg.capacity),
		name:   name,
	}
}

var _ Map[string, int] = (*HashMap[string, int])(nil)
