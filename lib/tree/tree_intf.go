package tree

import "github.com/benz9527/xcoll/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

// RBNode is the read-only view of a red-black tree node exposed to the
// map/set facades and to the iterator. The key is immutable after the
// node has been spliced in, only the value may be overwritten.
type RBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	HasKeyVal() bool
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

// RBTree is a single-threaded ordered associative container backed by a
// red-black tree. Mutating operations report the expected absent/present
// outcomes through booleans. Callers that share one tree across
// goroutines must serialize access externally.
type RBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Root() RBNode[K, V]
	// Insert splices key as a new leaf and rebalances. It reports false
	// and keeps the tree untouched if key is already present.
	Insert(key K, val V) bool
	// Remove unlinks the node holding key and rebalances. It reports
	// false if key is absent.
	Remove(key K) bool
	// Modify overwrites the value bound to key in place. Structure,
	// colors and size are untouched. It reports false if key is absent.
	Modify(key K, val V) bool
	Load(key K) (V, bool)
	LoadNode(key K) RBNode[K, V]
	Min() RBNode[K, V]
	Max() RBNode[K, V]
	// Pred and Succ return the in-order neighbor of a node obtained from
	// this tree, or nil at the extremes.
	Pred(node RBNode[K, V]) RBNode[K, V]
	Succ(node RBNode[K, V]) RBNode[K, V]
	// Copy clones the tree level by level, preserving shape and colors.
	// The clone shares no nodes with the receiver.
	Copy() RBTree[K, V]
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	Iter() RBTreeIterator[K, V]
	Release()
}

// RBTreeIterator is a cursor over an RBTree in comparator order.
// A fresh iterator sits before the first entry; Next/Prev move the
// cursor and report whether it lands on an entry. Key and Val panic on
// an invalid cursor, Valid is the non-panicking guard.
type RBTreeIterator[K infra.OrderedKey, V any] interface {
	Valid() bool
	HasNext() bool
	HasPrev() bool
	Next() bool
	Prev() bool
	First() bool
	Last() bool
	Key() K
	Val() V
}
