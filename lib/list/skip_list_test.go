package list

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcoll/lib/infra"
)

func requireSklAscending[K infra.OrderedKey, V any](t *testing.T, skl SkipList[K, V], cmp infra.OrderedKeyComparator[K]) {
	var (
		prev    K
		hasPrev bool
	)
	skl.Foreach(func(i int64, key K, val V) bool {
		if hasPrev {
			require.Negative(t, cmp(prev, key))
		}
		prev, hasPrev = key, true
		return true
	})
}

func TestSkipListInsertAndLoad(t *testing.T) {
	skl := NewSkipList[uint64, string]()
	require.True(t, skl.Insert(20, "twenty"))
	require.True(t, skl.Insert(10, "ten"))
	require.True(t, skl.Insert(30, "thirty"))
	require.Equal(t, int64(3), skl.Len())

	v, exists := skl.Load(10)
	require.True(t, exists)
	require.Equal(t, "ten", v)

	_, exists = skl.Load(15)
	require.False(t, exists)

	requireSklAscending(t, skl, infra.NaturalOrderComparator[uint64]())
}

func TestSkipListInsertDuplicated(t *testing.T) {
	skl := NewSkipList[uint64, string]()
	require.True(t, skl.Insert(5, "first"))
	require.False(t, skl.Insert(5, "second"))
	require.Equal(t, int64(1), skl.Len())

	v, exists := skl.Load(5)
	require.True(t, exists)
	require.Equal(t, "first", v)
}

func TestSkipListRemove(t *testing.T) {
	skl := NewSkipList[uint64, uint64]()
	for i := uint64(0); i < 64; i++ {
		require.True(t, skl.Insert(i, i*2))
	}

	v, removed := skl.Remove(9)
	require.True(t, removed)
	require.Equal(t, uint64(18), v)
	require.Equal(t, int64(63), skl.Len())

	_, exists := skl.Load(9)
	require.False(t, exists)
	_, removed = skl.Remove(9)
	require.False(t, removed)
	_, removed = skl.Remove(1000)
	require.False(t, removed)

	requireSklAscending(t, skl, infra.NaturalOrderComparator[uint64]())
}

func TestSkipListPeekAndPopHead(t *testing.T) {
	skl := NewSkipList[int32, string]()
	_, _, exists := skl.PeekHead()
	require.False(t, exists)
	_, _, exists = skl.PopHead()
	require.False(t, exists)

	skl.Insert(30, "c")
	skl.Insert(10, "a")
	skl.Insert(20, "b")

	k, v, exists := skl.PeekHead()
	require.True(t, exists)
	require.Equal(t, int32(10), k)
	require.Equal(t, "a", v)
	require.Equal(t, int64(3), skl.Len())

	k, v, exists = skl.PopHead()
	require.True(t, exists)
	require.Equal(t, int32(10), k)
	require.Equal(t, "a", v)
	require.Equal(t, int64(2), skl.Len())

	k, _, exists = skl.PopHead()
	require.True(t, exists)
	require.Equal(t, int32(20), k)
	k, _, exists = skl.PopHead()
	require.True(t, exists)
	require.Equal(t, int32(30), k)
	_, _, exists = skl.PopHead()
	require.False(t, exists)
	require.Equal(t, int64(0), skl.Len())
}

func TestSkipListRandomInsertAndDrainAll(t *testing.T) {
	skl := NewSkipList[uint64, uint64]()
	keys := make([]uint64, 0, 512)
	seen := make(map[uint64]struct{}, 512)
	for len(keys) < 512 {
		k := randv2.Uint64() % 10_000
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
		require.True(t, skl.Insert(k, k))
	}
	require.Equal(t, int64(512), skl.Len())
	require.GreaterOrEqual(t, skl.Levels(), int32(1))
	requireSklAscending(t, skl, infra.NaturalOrderComparator[uint64]())

	randv2.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for _, k := range keys {
		v, removed := skl.Remove(k)
		require.True(t, removed)
		require.Equal(t, k, v)
	}
	require.Equal(t, int64(0), skl.Len())
	require.Equal(t, int32(1), skl.Levels())
}

func TestSkipListDescOrder(t *testing.T) {
	skl := NewSkipList[uint64, uint64](WithSkipListDesc[uint64, uint64]())
	for _, k := range []uint64{3, 1, 4, 1, 5, 9, 2, 6} {
		skl.Insert(k, k)
	}

	collected := make([]uint64, 0, 8)
	skl.Foreach(func(i int64, key, val uint64) bool {
		collected = append(collected, key)
		return true
	})
	require.Equal(t, []uint64{9, 6, 5, 4, 3, 2, 1}, collected)
}

func TestSkipListCustomComparator(t *testing.T) {
	// Order by the last decimal digit, then by value.
	cmp := func(i, j uint64) int64 {
		if d := int64(i%10) - int64(j%10); d != 0 {
			return d
		}
		return int64(i) - int64(j)
	}
	skl := NewSkipList[uint64, uint64](WithSkipListComparator[uint64, uint64](cmp))
	for _, k := range []uint64{21, 13, 5, 102, 34} {
		require.True(t, skl.Insert(k, k))
	}

	collected := make([]uint64, 0, 5)
	skl.Foreach(func(i int64, key, val uint64) bool {
		collected = append(collected, key)
		return true
	})
	require.Equal(t, []uint64{21, 102, 13, 34, 5}, collected)
}

func TestSkipListForeachEarlyStop(t *testing.T) {
	skl := NewSkipList[uint64, uint64]()
	for i := uint64(0); i < 20; i++ {
		skl.Insert(i, i)
	}
	count := 0
	skl.Foreach(func(i int64, key, val uint64) bool {
		count++
		return count < 5
	})
	require.Equal(t, 5, count)
}

func TestSkipListFree(t *testing.T) {
	skl := NewSkipList[uint64, uint64]()
	for i := uint64(0); i < 100; i++ {
		skl.Insert(i, i)
	}
	skl.Free()
	require.Equal(t, int64(0), skl.Len())
	require.Equal(t, int32(1), skl.Levels())

	// A freed list stays usable.
	require.True(t, skl.Insert(1, 1))
	v, exists := skl.Load(1)
	require.True(t, exists)
	require.Equal(t, uint64(1), v)
}

func TestRandomLevelBounds(t *testing.T) {
	for i := 0; i < 10_000; i++ {
		lvl := randomLevel()
		require.GreaterOrEqual(t, lvl, int32(1))
		require.LessOrEqual(t, lvl, int32(sklMaxLevel))
	}
}

func BenchmarkSkipListInsert(b *testing.B) {
	skl := NewSkipList[uint64, uint64]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		skl.Insert(randv2.Uint64(), uint64(i))
	}
}
