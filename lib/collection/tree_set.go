package collection

import (
	"fmt"
	"strings"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/tree"
)

// TreeSet is the sorted set facade over the red-black tree engine.
type TreeSet[K infra.OrderedKey] struct {
	engine tree.RBTree[K, struct{}]
	name   string
}

func (s *TreeSet[K]) Name() string { return s.name }

func (s *TreeSet[K]) Add(key K) bool {
	return s.engine.Insert(key, struct{}{})
}

func (s *TreeSet[K]) Contains(key K) bool {
	_, exists := s.engine.Load(key)
	return exists
}

func (s *TreeSet[K]) Remove(key K) bool {
	return s.engine.Remove(key)
}

func (s *TreeSet[K]) Foreach(action func(key K) bool) {
	s.engine.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		return action(key)
	})
}

func (s *TreeSet[K]) Keys() []K {
	keys := make([]K, 0, s.engine.Len())
	s.Foreach(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (s *TreeSet[K]) Len() int64 { return s.engine.Len() }

func (s *TreeSet[K]) Purge() { s.engine.Release() }

// OrderedIter exposes the underlying tree cursor in key order.
func (s *TreeSet[K]) OrderedIter() tree.RBTreeIterator[K, struct{}] {
	return s.engine.Iter()
}

func (s *TreeSet[K]) String() string {
	var sb strings.Builder
	sb.WriteString(s.name)
	sb.WriteByte('{')
	first := true
	s.Foreach(func(key K) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", key)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

type TreeSetOpt[K infra.OrderedKey] func(*treeSetConfig[K])

type treeSetConfig[K infra.OrderedKey] struct {
	treeOpts []tree.RBTreeOpt[K, struct{}]
}

func WithTreeSetDesc[K infra.OrderedKey]() TreeSetOpt[K] {
	return func(cfg *treeSetConfig[K]) {
		cfg.treeOpts = append(cfg.treeOpts, tree.WithRBTreeDesc[K, struct{}]())
	}
}

func WithTreeSetComparator[K infra.OrderedKey](cmp infra.OrderedKeyComparator[K]) TreeSetOpt[K] {
	return func(cfg *treeSetConfig[K]) {
		cfg.treeOpts = append(cfg.treeOpts, tree.WithRBTreeComparator[K, struct{}](cmp))
	}
}

func NewTreeSet[K infra.OrderedKey](name string, opts ...TreeSetOpt[K]) *TreeSet[K] {
	cfg := &treeSetConfig[K]{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return &TreeSet[K]{
		engine: tree.NewRBTree[K, struct{}](cfg.treeOpts...),
		name:   name,
	}
}

var _ Set[uint64] = (*TreeSet[uint64])(nil)
