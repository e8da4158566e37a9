package kv

import "io"

type SafeStoreKeyFilterFunc[K comparable] func(key K) bool

func defaultAllKeysFilter[K comparable](key K) bool {
	return true
}

type Closable interface {
	io.Closer
}

// Map is the unordered hash-backed key-value store surface. It is
// single-threaded, same as the rbtree engine; wrap it with
// ThreadSafeStorer or an external lock for shared use.
type Map[K comparable, V any] interface {
	Put(key K, val V) error
	Get(key K) (val V, exists bool)
	Delete(key K) (val V, deleted bool)
	Foreach(action func(i uint64, key K, val V) bool)
	Len() int64
	Clear()
}

type ThreadSafeStorer[K comparable, V any] interface {
	Purge() error
	AddOrUpdate(key K, obj V)
	Replace(items map[K]V)
	Delete(key K)
	Get(key K) (item V, exists bool)
	ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K
	ListValues(keys ...K) (items []V)
}
