// Reference:
// https://github.com/nsqio/nsq/blob/master/internal/pqueue/pqueue.go

package queue

type PriorityQueue[E comparable] interface {
	Len() int64
	Push(item PQItem[E])
	Pop() ReadOnlyPQItem[E]
	Peek() ReadOnlyPQItem[E]
}

type ReadOnlyPQItem[E comparable] interface {
	Index() int64
	Value() E
	Priority() int64
}

// PQItemComparator follows the library ordering convention, a negative
// result sorts i before j, zero treats them equal, positive after.
type PQItemComparator[E comparable] func(i, j ReadOnlyPQItem[E]) int64

type PQItem[E comparable] interface {
	ReadOnlyPQItem[E]
	SetIndex(idx int64)
	SetPriority(pri int64)
}
