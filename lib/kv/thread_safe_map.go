package kv

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/benz9527/xcoll/lib/xlog"
)

// threadSafeMap wraps the builtin map with an RW mutex for the callers
// that want the serialization done for them; the flat map and the tree
// engines stay single-threaded by contract.
type threadSafeMap[K comparable, V any] struct {
	lock           sync.RWMutex
	items          map[K]V
	logger         xlog.XLogger
	isClosableItem bool
}

func (t *threadSafeMap[K, V]) AddOrUpdate(key K, obj V) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.items[key] = obj
}

func (t *threadSafeMap[K, V]) Replace(items map[K]V) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.items = items
}

func (t *threadSafeMap[K, V]) Delete(key K) {
	t.lock.Lock()
	defer t.lock.Unlock()
	delete(t.items, key)
}

func (t *threadSafeMap[K, V]) Get(key K) (item V, exists bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	item, exists = t.items[key]
	return
}

func (t *threadSafeMap[K, V]) ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K {
	realFilters := make([]SafeStoreKeyFilterFunc[K], 0, len(filters))
	for _, filter := range filters {
		if filter != nil {
			realFilters = append(realFilters, filter)
		}
	}
	if len(realFilters) == 0 {
		realFilters = append(realFilters, defaultAllKeysFilter[K])
	}

	t.lock.RLock()
	defer t.lock.RUnlock()

	keys := make([]K, 0, len(t.items))
	for key := range t.items {
		for _, filter := range realFilters {
			if filter(key) {
				keys = append(keys, key)
				break
			}
		}
	}
	return keys
}

func (t *threadSafeMap[K, V]) ListValues(keys ...K) (items []V) {
	contains := func(keys []K, key K) bool {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
		return false
	}

	t.lock.RLock()
	defer t.lock.RUnlock()
	values := make([]V, 0, len(t.items))
	for key, item := range t.items {
		if len(keys) == 0 || contains(keys, key) {
			values = append(values, item)
		}
	}
	return values
}

// Purge drops every entry; closable values get their Close called and
// failures land in the log, a purge never fails halfway.
func (t *threadSafeMap[K, V]) Purge() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.isClosableItem {
		for _, item := range t.items {
			closer, ok := any(item).(Closable)
			if !ok {
				continue
			}
			rv := reflect.ValueOf(item)
			switch rv.Kind() {
			case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func:
				if rv.IsNil() {
					continue
				}
			}
			if err := closer.Close(); err != nil {
				t.logger.Error(err, "purge close failed", zap.String("itemType", reflect.TypeOf(item).String()))
			}
		}
	}

	t.items = nil
	return nil
}

type ThreadSafeMapOpt func(*threadSafeMapConfig)

type threadSafeMapConfig struct {
	capacity int
	logger   xlog.XLogger
}

func WithThreadSafeMapCapacity(capacity int) ThreadSafeMapOpt {
	return func(cfg *threadSafeMapConfig) {
		if capacity > 0 {
			cfg.capacity = capacity
		}
	}
}

func WithThreadSafeMapLogger(logger xlog.XLogger) ThreadSafeMapOpt {
	return func(cfg *threadSafeMapConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func NewThreadSafeMap[K comparable, V any](opts ...ThreadSafeMapOpt) ThreadSafeStorer[K, V] {
	cfg := &threadSafeMapConfig{capacity: 32}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = xlog.NewXLogger(xlog.WithXLogName("threadSafeMap"))
	}

	closableType := reflect.TypeOf((*Closable)(nil)).Elem()
	isClosableItem := reflect.TypeOf((*V)(nil)).Elem().Implements(closableType)

	return &threadSafeMap[K, V]{
		items:          make(map[K]V, cfg.capacity),
		logger:         cfg.logger,
		isClosableItem: isClosableItem,
	}
}
