package collection

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/list"
)

// SklMap is the sorted map facade over the skip-list engine. Same
// surface as TreeMap, the probabilistic structure trades the rbtree's
// worst-case bounds for simpler rebalancing.
type SklMap[K infra.OrderedKey, V any] struct {
	engine list.SkipList[K, V]
	name   string
}

func (m *SklMap[K, V]) Name() string { return m.name }

func (m *SklMap[K, V]) Put(key K, val V) bool {
	if created := m.engine.Insert(key, val); created {
		return true
	}
	// Duplicated key, replace through remove and reinsert.
	m.engine.Remove(key)
	m.engine.Insert(key, val)
	return false
}

func (m *SklMap[K, V]) Get(key K) (V, bool) {
	return m.engine.Load(key)
}

func (m *SklMap[K, V]) Remove(key K) (V, bool) {
	return m.engine.Remove(key)
}

func (m *SklMap[K, V]) Foreach(action func(key K, val V) bool) {
	m.engine.Foreach(func(i int64, key K, val V) bool {
		return action(key, val)
	})
}

func (m *SklMap[K, V]) Keys() []K {
	return lo.Map(collectPairs[K, V](m), func(p kvPair[K, V], _ int) K { return p.key })
}

func (m *SklMap[K, V]) Values() []V {
	return lo.Map(collectPairs[K, V](m), func(p kvPair[K, V], _ int) V { return p.val })
}

func (m *SklMap[K, V]) Len() int64 { return m.engine.Len() }

func (m *SklMap[K, V]) Purge() { m.engine.Free() }

func (m *SklMap[K, V]) String() string {
	return formatPairs(m.name, collectPairs[K, V](m))
}

type SklMapOpt[K infra.OrderedKey, V any] func(*sklMapConfig[K, V])

type sklMapConfig[K infra.OrderedKey, V any] struct {
	sklOpts []list.SkipListOption[K, V]
}

func WithSklMapDesc[K infra.OrderedKey, V any]() SklMapOpt[K, V] {
	return func(cfg *sklMapConfig[K, V]) {
		cfg.sklOpts = append(cfg.sklOpts, list.WithSkipListDesc[K, V]())
	}
}

func WithSklMapComparator[K infra.OrderedKey, V any](cmp infra.OrderedKeyComparator[K]) SklMapOpt[K, V] {
	return func(cfg *sklMapConfig[K, V]) {
		cfg.sklOpts = append(cfg.sklOpts, list.WithSkipListComparator[K, V](cmp))
	}
}

func NewSklMap[K infra.OrderedKey, V any](name string, opts ...SklMapOpt[K, V]) *SklMap[K, V] {
	cfg := &sklMapConfig[K, V]{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return &SklMap[K, V]{
		engine: list.NewSkipList[K, V](cfg.sklOpts...),
		name:   name,
	}
}

var _ Map[uint64, string] = (*SklMap[uint64, string])(nil)
