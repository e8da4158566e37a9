package list

import (
	"github.com/benz9527/xcoll/lib/infra"
)

// SkipList is the probabilistic ordered engine. Single-threaded, same
// contract as the rbtree so the map facades can swap one for the other.
type SkipList[K infra.OrderedKey, V any] interface {
	Len() int64
	Levels() int32
	Insert(key K, val V) bool
	Load(key K) (V, bool)
	Remove(key K) (V, bool)
	Foreach(action func(i int64, key K, val V) bool)
	PeekHead() (K, V, bool)
	PopHead() (K, V, bool)
	Free()
}
