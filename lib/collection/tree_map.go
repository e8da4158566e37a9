package collection

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/tree"
)

type kvPair[K comparable, V any] struct {
	key K
	val V
}

func collectPairs[K comparable, V any](m Map[K, V]) []kvPair[K, V] {
	pairs := make([]kvPair[K, V], 0, m.Len())
	m.Foreach(func(key K, val V) bool {
		pairs = append(pairs, kvPair[K, V]{key: key, val: val})
		return true
	})
	return pairs
}

func formatPairs[K comparable, V any](name string, pairs []kvPair[K, V]) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v:%v", p.key, p.val)
	}
	sb.WriteByte('}')
	return sb.String()
}

// TreeMap is the sorted map facade over the red-black tree engine.
// Iteration and String follow the comparator order.
type TreeMap[K infra.OrderedKey, V any] struct {
	engine tree.RBTree[K, V]
	name   string
}

func (m *TreeMap[K, V]) Name() string { return m.name }

func (m *TreeMap[K, V]) Put(key K, val V) bool {
	if m.engine.Modify(key, val) {
		return false
	}
	return m.engine.Insert(key, val)
}

func (m *TreeMap[K, V]) Get(key K) (V, bool) {
	return m.engine.Load(key)
}

func (m *TreeMap[K, V]) Remove(key K) (V, bool) {
	val, exists := m.engine.Load(key)
	if !exists {
		return val, false
	}
	m.engine.Remove(key)
	return val, true
}

func (m *TreeMap[K, V]) Foreach(action func(key K, val V) bool) {
	m.engine.Foreach(func(idx int64, color tree.RBColor, key K, val V) bool {
		return action(key, val)
	})
}

func (m *TreeMap[K, V]) Keys() []K {
	return lo.Map(collectPairs[K, V](m), func(p kvPair[K, V], _ int) K { return p.key })
}

func (m *TreeMap[K, V]) Values() []V {
	return lo.Map(collectPairs[K, V](m), func(p kvPair[K, V], _ int) V { return p.val })
}

func (m *TreeMap[K, V]) Len() int64 { return m.engine.Len() }

func (m *TreeMap[K, V]) Purge() { m.engine.Release() }

// OrderedIter exposes the underlying tree cursor for callers that want
// bidirectional traversal instead of a full Foreach sweep.
func (m *TreeMap[K, V]) OrderedIter() tree.RBTreeIterator[K, V] {
	return m.engine.Iter()
}

func (m *TreeMap[K, V]) String() string {
	return formatPairs(m.name, collectPairs[K, V](m))
}

type TreeMapOpt[K infra.OrderedKey, V any] func(*treeMapConfig[K, V])

type treeMapConfig[K infra.OrderedKey, V any] struct {
	treeOpts []tree.RBTreeOpt[K, V]
}

func WithTreeMapDesc[K infra.OrderedKey, V any]() TreeMapOpt[K, V] {
	return func(cfg *treeMapConfig[K, V]) {
		cfg.treeOpts = append(cfg.treeOpts, tree.WithRBTreeDesc[K, V]())
	}
}

func WithTreeMapComparator[K infra.OrderedKey, V any](cmp infra.OrderedKeyComparator[K]) TreeMapOpt[K, V] {
	return func(cfg *treeMapConfig[K, V]) {
		cfg.treeOpts = append(cfg.treeOpts, tree.WithRBTreeComparator[K, V](cmp))
	}
}

func NewTreeMap[K infra.OrderedKey, V any](name string, opts ...TreeMapOpt[K, V]) *TreeMap[K, V] {
	cfg := &treeMapConfig[K, V]{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return &TreeMap[K, V]{
		engine: tree.NewRBTree[K, V](cfg.treeOpts...),
		name:   name,
	}
}

var _ Map[uint64, string] = (*TreeMap[uint64, string])(nil)
