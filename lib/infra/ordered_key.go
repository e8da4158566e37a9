package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey is the constraint for all key types that carry a natural
// total order, i.e. the types on which < and > are defined.
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator reports how i orders against j.
// It must implement a strict weak order (irreflexive, asymmetric,
// transitive, with transitive incomparability). Key equality is always
// derived as mutual non-precedence, never as ==.
// Assume i is the new key.
//  1. i == j (return 0)
//  2. i > j (return 1), turn to right part.
//  3. i < j (return -1), turn to left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// NaturalOrderComparator builds the ascending comparator backed by the
// key type's own < operator.
func NaturalOrderComparator[K OrderedKey]() OrderedKeyComparator[K] {
	return func(i, j K) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
}

// ReverseOrderComparator flips an existing comparator.
func ReverseOrderComparator[K OrderedKey](cmp OrderedKeyComparator[K]) OrderedKeyComparator[K] {
	return func(i, j K) int64 {
		return -cmp(i, j)
	}
}
