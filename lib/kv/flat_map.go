package kv

import (
	"errors"
	"math"
	"math/bits"
	randv2 "math/rand/v2"
	"unsafe"
)

// References:
// https://www.dolthub.com/blog/2023-03-28-swiss-map/
// https://github.com/dolthub/swiss/blob/main/map.go
// https://faultlore.com/blah/hashbrown-tldr/
// https://github.com/abseil/abseil-cpp/blob/master/absl/container/internal/raw_hash_set.h
// http://graphics.stanford.edu/~seander/bithacks.html##ValueInWord

// Flat hash map (swiss table). The hash is split into a 57-bit group
// locator (h1) and a 7-bit short fingerprint (h2) kept in a per-group
// control byte array. One uint64 load probes 8 slots at once through
// word-wide byte matching, no SIMD needed, so the layout is portable
// across GOARCH values.
//
//	 index |   0    |   1    |   2    |   3    | ... |   7    |
//	-------|--------|--------|--------|--------|     |--------|
//	 value | (5,7)  |        | (39,8) |        | ... |        |
//	-------|--------|--------|--------|--------|     |--------|
//	 ctrl  |01010111|10000000|00110110|10000000| ... |10000000|
//
// Collisions resolve with open addressing over whole groups, probing
// is linear and cache friendly. Deletion keeps a tombstone when the
// group is full so later probe chains stay intact.

const (
	groupSize              = 8
	maxAvgGroupLoad        = 7
	h1Mask          uint64 = 0xffff_ffff_ffff_ff80
	h2Mask          uint64 = 0x0000_0000_0000_007f
	empty           int8   = -128 // 0b1000_0000, 0x80
	tombstone       int8   = -2   // 0b1111_1110, 0xFE
	loBits          uint64 = 0x0101_0101_0101_0101
	hiBits          uint64 = 0x8080_8080_8080_8080
)

// A 57 bits hash prefix. Used as an index into the groups array.
type h1 uint64

// A 7 bits hash suffix. The control byte fingerprint of a FULL slot.
type h2 int8

type bitset uint64

type flatMapMetadata [groupSize]int8

func (md *flatMapMetadata) word() uint64 {
	return *(*uint64)(unsafe.Pointer(md))
}

func hasZeroByte(x uint64) bitset {
	return bitset(((x - loBits) & ^x) & hiBits)
}

func metadataMatchH2(md *flatMapMetadata, h h2) bitset {
	return hasZeroByte(md.word() ^ (loBits * uint64(uint8(h))))
}

func metadataMatchEmpty(md *flatMapMetadata) bitset {
	return hasZeroByte(md.word() ^ hiBits)
}

func nextMatch(bs *bitset) uint32 {
	s := uint32(bits.TrailingZeros64(uint64(*bs)))
	*bs &= ^(1 << s) // unset the reported bit
	return s >> 3    // div by 8, byte offset to slot index
}

// Keys and values live next to their group, a probe touches one cache
// line for the control word and one region for the payload.
type flatMapGroup[K comparable, V any] struct {
	keys [groupSize]K
	vals [groupSize]V
}

var _ Map[uint64, uint64] = (*FlatMap[uint64, uint64])(nil)

type FlatMap[K comparable, V any] struct {
	ctrlMetadata []flatMapMetadata
	groups       []flatMapGroup[K, V]
	hasher       Hasher[K]
	resident     uint32 // current alive elements
	dead         uint32 // current tombstone elements
	limit        uint32 // max resident elements before rehash
}

func (m *FlatMap[K, V]) Put(key K, val V) error {
	if m.resident >= m.limit {
		n, err := m.nextCap()
		if err != nil {
			return err
		}
		m.rehash(n)
	}
	m.put(key, val)
	return nil
}

func (m *FlatMap[K, V]) put(key K, val V) {
	hi, lo := splitHash(m.hasher.Hash(key))
	i := probeStart(hi, uint32(len(m.groups)))
	for {
		matchBitset := metadataMatchH2(&m.ctrlMetadata[i], lo)
		for matchBitset != 0 {
			if j := nextMatch(&matchBitset); key == m.groups[i].keys[j] {
				// Fingerprint and key equal, update in place.
				m.groups[i].vals[j] = val
				return
			}
		}

		if matchBitset = metadataMatchEmpty(&m.ctrlMetadata[i]); matchBitset != 0 {
			n := nextMatch(&matchBitset)
			m.groups[i].keys[n] = key
			m.groups[i].vals[n] = val
			m.ctrlMetadata[i][n] = int8(lo)
			m.resident++
			return
		}
		i += 1 // open-addressing, next group
		if i >= uint32(len(m.groups)) {
			i = 0 // wrap-around
		}
	}
}

func (m *FlatMap[K, V]) Get(key K) (val V, exists bool) {
	hi, lo := splitHash(m.hasher.Hash(key))
	i := probeStart(hi, uint32(len(m.groups)))
	for {
		matchBitset := metadataMatchH2(&m.ctrlMetadata[i], lo)
		for matchBitset != 0 {
			if j := nextMatch(&matchBitset); key == m.groups[i].keys[j] {
				return m.groups[i].vals[j], true
			}
		}
		if metadataMatchEmpty(&m.ctrlMetadata[i]) != 0 {
			// An empty slot in the group ends every probe chain.
			return val, false
		}
		i += 1
		if i >= uint32(len(m.groups)) {
			i = 0
		}
	}
}

func (m *FlatMap[K, V]) Delete(key K) (val V, deleted bool) {
	hi, lo := splitHash(m.hasher.Hash(key))
	i := probeStart(hi, uint32(len(m.groups)))
	for {
		matchBitset := metadataMatchH2(&m.ctrlMetadata[i], lo)
		for matchBitset != 0 {
			if j := nextMatch(&matchBitset); key == m.groups[i].keys[j] {
				val = m.groups[i].vals[j]
				if metadataMatchEmpty(&m.ctrlMetadata[i]) != 0 {
					// Probe chains never walked past this group, the
					// slot can go straight back to empty.
					m.ctrlMetadata[i][j] = empty
					m.resident--
				} else {
					m.ctrlMetadata[i][j] = tombstone
					m.dead++
				}
				var (
					k K
					v V
				)
				m.groups[i].keys[j] = k
				m.groups[i].vals[j] = v
				return val, true
			}
		}
		if metadataMatchEmpty(&m.ctrlMetadata[i]) != 0 {
			return val, false
		}
		i += 1
		if i >= uint32(len(m.groups)) {
			i = 0
		}
	}
}

// Foreach starts from a random group so callers cannot bake iteration
// order assumptions into their code.
func (m *FlatMap[K, V]) Foreach(action func(i uint64, key K, val V) bool) {
	ctrl, groups := m.ctrlMetadata, m.groups
	i := randv2.Uint32N(uint32(len(groups)))
	idx := uint64(0)
	for g := 0; g < len(groups); g++ {
		for j, c := range ctrl[i] {
			if c == empty || c == tombstone {
				continue
			}
			k, v := groups[i].keys[j], groups[i].vals[j]
			if goOn := action(idx, k, v); !goOn {
				return
			}
			idx++
		}
		i++
		if i >= uint32(len(groups)) {
			i = 0
		}
	}
}

func (m *FlatMap[K, V]) Clear() {
	for i := range m.ctrlMetadata {
		m.ctrlMetadata[i] = newEmptyMetadata()
	}
	var (
		k K
		v V
	)
	for i := range m.groups {
		g := &m.groups[i]
		for j := range g.keys {
			g.keys[j] = k
			g.vals[j] = v
		}
	}
	m.resident, m.dead = 0, 0
}

func (m *FlatMap[K, V]) Len() int64 {
	return int64(m.resident - m.dead)
}

func (m *FlatMap[K, V]) Cap() int64 {
	return int64(m.limit - m.resident)
}

// MigrateFrom drains a builtin map into the flat map.
func (m *FlatMap[K, V]) MigrateFrom(items map[K]V) error {
	for k, v := range items {
		if err := m.Put(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (m *FlatMap[K, V]) nextCap() (uint32, error) {
	if m.dead >= (m.resident >> 1) {
		// Tombstone heavy, rehash in place frees the dead slots.
		return uint32(len(m.groups)), nil
	}
	newCap := uint64(len(m.groups)) * 2
	if newCap > math.MaxUint32 {
		return 0, errors.New("[flat-map] overflow")
	}
	return uint32(newCap), nil
}

func (m *FlatMap[K, V]) rehash(newGroups uint32) {
	oldGroups, oldCtrl := m.groups, m.ctrlMetadata
	m.groups = make([]flatMapGroup[K, V], newGroups)
	m.ctrlMetadata = make([]flatMapMetadata, newGroups)
	for i := 0; i < len(m.ctrlMetadata); i++ {
		m.ctrlMetadata[i] = newEmptyMetadata()
	}

	m.hasher = newSeedHasher[K](m.hasher)
	m.limit = newGroups * maxAvgGroupLoad
	m.resident, m.dead = 0, 0
	for i := range oldCtrl {
		for j := range oldCtrl[i] {
			c := oldCtrl[i][j]
			if c == empty || c == tombstone {
				continue
			}
			m.put(oldGroups[i].keys[j], oldGroups[i].vals[j])
		}
	}
}

func (m *FlatMap[K, V]) loadFactor() float64 {
	slots := float64(len(m.groups) * groupSize)
	return float64(m.resident-m.dead) / slots
}

// NewFlatMap sizes the table for capacity elements without a rehash.
func NewFlatMap[K comparable, V any](capacity uint32) *FlatMap[K, V] {
	groups := calcGroups(capacity)
	m := &FlatMap[K, V]{
		ctrlMetadata: make([]flatMapMetadata, groups),
		groups:       make([]flatMapGroup[K, V], groups),
		hasher:       newHasher[K](),
		resident:     0,
		dead:         0,
		limit:        groups * maxAvgGroupLoad,
	}
	for i := 0; i < len(m.ctrlMetadata); i++ {
		m.ctrlMetadata[i] = newEmptyMetadata()
	}
	return m
}

// calcGroups keeps the group count a power of two so that the probe
// start reduces to a mask instead of a modulo.
func calcGroups(size uint32) uint32 {
	groups := (size + maxAvgGroupLoad - 1) / maxAvgGroupLoad
	if groups == 0 {
		groups = 1
	}
	if groups&(groups-1) != 0 {
		groups = 1 << bits.Len32(groups)
	}
	return groups
}

func newEmptyMetadata() flatMapMetadata {
	var md flatMapMetadata
	for i := 0; i < len(md); i++ {
		md[i] = empty
	}
	return md
}

func splitHash(hash uint64) (hi h1, lo h2) {
	return h1((hash & h1Mask) >> 7), h2(hash & h2Mask)
}

func probeStart(hi h1, groups uint32) uint32 {
	return uint32(hi) & (groups - 1)
}
