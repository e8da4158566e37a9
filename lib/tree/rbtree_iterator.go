package tree

import "github.com/benz9527/xcoll/lib/infra"

type iterPos int8

const (
	iterBeforeFirst iterPos = -1 + iota
	iterInRange
	iterAfterLast
)

// rbTreeIterator is a cursor layered on the pred/succ navigation of the
// engine, it owns no node and never mutates the tree. Any mutating tree
// operation invalidates outstanding iterators; in particular the
// payload swap of a two-children removal rebinds a surviving node to a
// different key under a parked cursor.
type rbTreeIterator[K infra.OrderedKey, V any] struct {
	tree RBTree[K, V]
	cur  RBNode[K, V]
	pos  iterPos
}

func (it *rbTreeIterator[K, V]) Valid() bool {
	return it.pos == iterInRange && !isNilLeaf[K, V](it.cur)
}

func (it *rbTreeIterator[K, V]) HasNext() bool {
	switch it.pos {
	case iterBeforeFirst:
		return it.tree.Len() > 0
	case iterInRange:
		return succNode[K, V](it.cur) != nil
	default:
	}
	return false
}

func (it *rbTreeIterator[K, V]) HasPrev() bool {
	switch it.pos {
	case iterAfterLast:
		return it.tree.Len() > 0
	case iterInRange:
		return predNode[K, V](it.cur) != nil
	default:
	}
	return false
}

func (it *rbTreeIterator[K, V]) Next() bool {
	switch it.pos {
	case iterBeforeFirst:
		return it.First()
	case iterInRange:
		s := succNode[K, V](it.cur)
		if s == nil {
			it.cur = nil
			it.pos = iterAfterLast
			return false
		}
		it.cur = s
		return true
	default:
	}
	return false
}

func (it *rbTreeIterator[K, V]) Prev() bool {
	switch it.pos {
	case iterAfterLast:
		return it.Last()
	case iterInRange:
		p := predNode[K, V](it.cur)
		if p == nil {
			it.cur = nil
			it.pos = iterBeforeFirst
			return false
		}
		it.cur = p
		return true
	default:
	}
	return false
}

func (it *rbTreeIterator[K, V]) First() bool {
	it.cur = minNode[K, V](it.tree.Root())
	if it.cur == nil {
		it.pos = iterAfterLast
		return false
	}
	it.pos = iterInRange
	return true
}

func (it *rbTreeIterator[K, V]) Last() bool {
	it.cur = maxNode[K, V](it.tree.Root())
	if it.cur == nil {
		it.pos = iterBeforeFirst
		return false
	}
	it.pos = iterInRange
	return true
}

// Key panics on an invalid cursor, dereferencing a past-the-end
// iterator is a programmer error, Valid is the guard.
func (it *rbTreeIterator[K, V]) Key() K {
	if !it.Valid() {
		panic( /* debug assertion */ "[rbtree] iterator key access out of range")
	}
	return it.cur.Key()
}

func (it *rbTreeIterator[K, V]) Val() V {
	if !it.Valid() {
		panic( /* debug assertion */ "[rbtree] iterator val access out of range")
	}
	return it.cur.Val()
}

// newRBTreeIterator seats the cursor before the first entry, the first
// Next lands on the minimum key.
func newRBTreeIterator[K infra.OrderedKey, V any](tree RBTree[K, V]) RBTreeIterator[K, V] {
	return &rbTreeIterator[K, V]{
		tree: tree,
		pos:  iterBeforeFirst,
	}
}
