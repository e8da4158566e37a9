package list

import (
	randv2 "math/rand/v2"
	"sync/atomic"

	"github.com/benz9527/xcoll/lib/infra"
)

// References:
// https://www.cl.cam.ac.uk/teaching/0506/Algorithms/skiplists.pdf
// classic: https://github.com/antirez/disque/blob/master/src/skiplist.h
// classic: https://github.com/antirez/disque/blob/master/src/skiplist.c

const (
	sklMaxLevel    = 32   // 2^32 - 1 elements
	sklProbability = 0.25 // P = 1/4, a skip list node has 1/4 probability to gain a level
)

// randomLevel draws a geometric level in [1, sklMaxLevel].
// math/rand/v2 avoids the global mutex of the v1 package.
func randomLevel() int32 {
	level := int32(1)
	for float64(randv2.Int64()&0xFFFF) < sklProbability*0xFFFF {
		level += 1
	}
	if level < sklMaxLevel {
		return level
	}
	return sklMaxLevel
}

type sklNode[K infra.OrderedKey, V any] struct {
	key K
	val V
	// forwards[i] is the next node in horizontal direction at level i.
	// A data node owns as many levels as its random draw granted.
	forwards []*sklNode[K, V]
}

func newSklNode[K infra.OrderedKey, V any](level int32, key K, val V) *sklNode[K, V] {
	return &sklNode[K, V]{
		key:      key,
		val:      val,
		forwards: make([]*sklNode[K, V], level),
	}
}

type skipList[K infra.OrderedKey, V any] struct {
	// Sentinel node. head.forwards[0] is the first data node.
	head  *sklNode[K, V]
	cmp   infra.OrderedKeyComparator[K]
	level atomic.Int32 // the real max level in use
	len   atomic.Int64
}

func (skl *skipList[K, V]) Len() int64 {
	return skl.len.Load()
}

func (skl *skipList[K, V]) Levels() int32 {
	return skl.level.Load()
}

// traverse walks top-down and fills update with the rightmost node
// strictly before key at every level. Returns the level 0 candidate.
func (skl *skipList[K, V]) traverse(key K, update *[sklMaxLevel]*sklNode[K, V]) *sklNode[K, V] {
	x := skl.head
	for i := skl.level.Load() - 1; i >= 0; i-- { // move down level
		for next := x.forwards[i]; next != nil && skl.cmp(next.key, key) < 0; next = x.forwards[i] {
			x = next
		}
		update[i] = x
	}
	return x.forwards[0]
}

func (skl *skipList[K, V]) Insert(key K, val V) bool {
	var update [sklMaxLevel]*sklNode[K, V]
	if x := skl.traverse(key, &update); x != nil && skl.cmp(x.key, key) == 0 {
		// Duplicated key, stay untouched.
		return false
	}

	lvl := randomLevel()
	if lvl > skl.level.Load() {
		for i := skl.level.Load(); i < lvl; i++ {
			update[i] = skl.head
		}
		skl.level.Store(lvl)
	}

	x := newSklNode(lvl, key, val)
	for i := int32(0); i < lvl; i++ {
		x.forwards[i] = update[i].forwards[i]
		update[i].forwards[i] = x
	}
	skl.len.Add(1)
	return true
}

func (skl *skipList[K, V]) Load(key K) (V, bool) {
	x := skl.head
	for i := skl.level.Load() - 1; i >= 0; i-- {
		for next := x.forwards[i]; next != nil && skl.cmp(next.key, key) < 0; next = x.forwards[i] {
			x = next
		}
	}
	if x = x.forwards[0]; x != nil && skl.cmp(x.key, key) == 0 {
		return x.val, true
	}
	return *new(V), false
}

func (skl *skipList[K, V]) Remove(key K) (V, bool) {
	var update [sklMaxLevel]*sklNode[K, V]
	x := skl.traverse(key, &update)
	if x == nil || skl.cmp(x.key, key) != 0 {
		return *new(V), false
	}
	skl.unlink(x, &update)
	return x.val, true
}

func (skl *skipList[K, V]) unlink(x *sklNode[K, V], update *[sklMaxLevel]*sklNode[K, V]) {
	for i := int32(0); i < skl.level.Load(); i++ {
		if update[i].forwards[i] != x {
			continue
		}
		update[i].forwards[i] = x.forwards[i]
	}
	// Shrink the levels that only the removed node occupied.
	for skl.level.Load() > 1 && skl.head.forwards[skl.level.Load()-1] == nil {
		skl.level.Add(-1)
	}
	x.forwards = nil
	skl.len.Add(-1)
}

func (skl *skipList[K, V]) Foreach(action func(i int64, key K, val V) bool) {
	idx := int64(0)
	for x := skl.head.forwards[0]; x != nil; x = x.forwards[0] {
		if goOn := action(idx, x.key, x.val); !goOn {
			return
		}
		idx++
	}
}

func (skl *skipList[K, V]) PeekHead() (key K, val V, exists bool) {
	x := skl.head.forwards[0]
	if x == nil {
		return
	}
	return x.key, x.val, true
}

func (skl *skipList[K, V]) PopHead() (key K, val V, exists bool) {
	x := skl.head.forwards[0]
	if x == nil {
		return
	}
	key, val = x.key, x.val
	var update [sklMaxLevel]*sklNode[K, V]
	for i := skl.level.Load() - 1; i >= 0; i-- {
		update[i] = skl.head
	}
	skl.unlink(x, &update)
	return key, val, true
}

func (skl *skipList[K, V]) Free() {
	x := skl.head.forwards[0]
	for x != nil {
		next := x.forwards[0]
		x.forwards = nil
		x = next
	}
	for i := range skl.head.forwards {
		skl.head.forwards[i] = nil
	}
	skl.level.Store(1)
	skl.len.Store(0)
}

type SkipListOption[K infra.OrderedKey, V any] func(*skipList[K, V])

func WithSkipListComparator[K infra.OrderedKey, V any](cmp infra.OrderedKeyComparator[K]) SkipListOption[K, V] {
	return func(skl *skipList[K, V]) {
		if cmp != nil {
			skl.cmp = cmp
		}
	}
}

func WithSkipListDesc[K infra.OrderedKey, V any]() SkipListOption[K, V] {
	return func(skl *skipList[K, V]) {
		skl.cmp = infra.ReverseOrderComparator[K](infra.NaturalOrderComparator[K]())
	}
}

func NewSkipList[K infra.OrderedKey, V any](opts ...SkipListOption[K, V]) SkipList[K, V] {
	skl := &skipList[K, V]{
		head: newSklNode[K, V](sklMaxLevel, *new(K), *new(V)),
	}
	skl.level.Store(1)
	for _, o := range opts {
		if o != nil {
			o(skl)
		}
	}
	if skl.cmp == nil {
		skl.cmp = infra.NaturalOrderComparator[K]()
	}
	return skl
}

var _ SkipList[uint64, struct{}] = (*skipList[uint64, struct{}])(nil)
