package kv

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type closableRes struct {
	closed bool
	err    error
}

func (r *closableRes) Close() error {
	r.closed = true
	return r.err
}

func TestThreadSafeMapBasicOps(t *testing.T) {
	m := NewThreadSafeMap[string, int]()
	m.AddOrUpdate("a", 1)
	m.AddOrUpdate("b", 2)
	m.AddOrUpdate("a", 11)

	v, exists := m.Get("a")
	require.True(t, exists)
	require.Equal(t, 11, v)

	m.Delete("a")
	_, exists = m.Get("a")
	require.False(t, exists)

	m.Replace(map[string]int{"x": 7, "y": 8})
	_, exists = m.Get("b")
	require.False(t, exists)
	v, exists = m.Get("x")
	require.True(t, exists)
	require.Equal(t, 7, v)
}

func TestThreadSafeMapListKeysAndValues(t *testing.T) {
	m := NewThreadSafeMap[string, int]()
	m.Replace(map[string]int{"a": 1, "b": 2, "c": 3})

	keys := m.ListKeys()
	sort.Strings(keys)
	require.Equal(t, []string{"a", "b", "c"}, keys)

	keys = m.ListKeys(func(key string) bool { return key != "b" }, nil)
	sort.Strings(keys)
	require.Equal(t, []string{"a", "c"}, keys)

	vals := m.ListValues("a", "c")
	sort.Ints(vals)
	require.Equal(t, []int{1, 3}, vals)

	vals = m.ListValues()
	sort.Ints(vals)
	require.Equal(t, []int{1, 2, 3}, vals)
}

func TestThreadSafeMapPurgeClosesItems(t *testing.T) {
	m := NewThreadSafeMap[string, *closableRes]()
	r1, r2 := &closableRes{}, &closableRes{err: errors.New("close boom")}
	m.AddOrUpdate("r1", r1)
	m.AddOrUpdate("r2", r2)
	m.AddOrUpdate("nil", nil)

	require.NoError(t, m.Purge())
	require.True(t, r1.closed)
	require.True(t, r2.closed)

	_, exists := m.Get("r1")
	require.False(t, exists)
}

func TestThreadSafeMapPurgeNonClosableItems(t *testing.T) {
	m := NewThreadSafeMap[string, int](WithThreadSafeMapCapacity(8))
	m.AddOrUpdate("a", 1)
	require.NoError(t, m.Purge())
	_, exists := m.Get("a")
	require.False(t, exists)
}

func TestThreadSafeMapConcurrentAccess(t *testing.T) {
	m := NewThreadSafeMap[int, int]()
	var wg sync.WaitGroup
	const workers = 8
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := base*1000 + i
				m.AddOrUpdate(key, key)
				if v, exists := m.Get(key); exists {
					require.Equal(t, key, v)
				}
				if i%3 == 0 {
					m.Delete(key)
				}
			}
		}(w)
	}
	wg.Wait()
	require.NotEmpty(t, m.ListKeys())
}
