package collection

import "fmt"

// Map is the facade every key-value engine in this library can stand
// behind. Put upserts and reports whether a brand new entry was
// created. The tree and skip-list backed flavors iterate in key order,
// the hash backed one does not.
type Map[K comparable, V any] interface {
	fmt.Stringer
	Name() string
	Put(key K, val V) bool
	Get(key K) (V, bool)
	Remove(key K) (V, bool)
	Foreach(action func(key K, val V) bool)
	Keys() []K
	Values() []V
	Len() int64
	Purge()
}

// Set is the keys-only facade over the same engines.
type Set[K comparable] interface {
	fmt.Stringer
	Name() string
	Add(key K) bool
	Contains(key K) bool
	Remove(key K) bool
	Foreach(action func(key K) bool)
	Keys() []K
	Len() int64
	Purge()
}
