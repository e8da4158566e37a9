package id

import (
	"strconv"
	"sync/atomic"
	"unsafe"
)

// Assumed cache line size, amd64 and most arm64 cores use 64 bytes.
const cacheLinePadSize = 64

// monotonicNonZeroID is an ID generator. Only increases, and skips
// zero on overflow. The counter occupies a whole cache line so that
// neighboring allocations cannot false-share with the hot word.
type monotonicNonZeroID struct {
	_   [cacheLinePadSize - unsafe.Sizeof(*new(uint64))]byte
	val uint64
	_   [cacheLinePadSize - unsafe.Sizeof(*new(uint64))]byte
}

func (id *monotonicNonZeroID) next() uint64 {
	var v uint64
	if v = atomic.AddUint64(&id.val, 1); v == 0 {
		v = atomic.AddUint64(&id.val, 1)
	}
	return v
}

// MonotonicNonZeroID builds a process-local, strictly increasing and
// never-zero uint64 source. The property tests use it as a distinct
// key feed.
func MonotonicNonZeroID() (UUIDGen, error) {
	src := &monotonicNonZeroID{val: 0}
	id := new(uuidDelegator)
	id.number = func() uint64 {
		return src.next()
	}
	id.str = func() string {
		return strconv.FormatUint(src.next(), 10)
	}
	return id, nil
}
