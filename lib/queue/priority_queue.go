package queue

import (
	"container/heap"
	"sync"
	"sync/atomic"
)

type pqItem[E comparable] struct {
	priority int64
	index    int64
	value    E
}

func (item *pqItem[E]) Index() int64 {
	if item == nil {
		return -1
	}
	return atomic.LoadInt64(&item.index)
}

func (item *pqItem[E]) Value() (val E) {
	if item == nil {
		return
	}
	return item.value
}

func (item *pqItem[E]) Priority() int64 {
	if item == nil {
		return -1
	}
	return atomic.LoadInt64(&item.priority)
}

func (item *pqItem[E]) SetIndex(idx int64) {
	if item == nil {
		return
	}
	atomic.SwapInt64(&item.index, idx)
}

func (item *pqItem[E]) SetPriority(pri int64) {
	if item == nil {
		return
	}
	atomic.SwapInt64(&item.priority, pri)
}

func NewPriorityQueueItem[E comparable](val E, pri int64) PQItem[E] {
	return &pqItem[E]{
		priority: pri,
		value:    val,
		index:    0,
	}
}

func minPriorityComparator[E comparable](i, j ReadOnlyPQItem[E]) int64 {
	return i.Priority() - j.Priority()
}

// arrayPQ is the heap.Interface adapter. Items carry their own heap
// index so callers can Fix or Remove without a linear scan.
type arrayPQ[E comparable] struct {
	arr        []PQItem[E]
	comparator PQItemComparator[E]
}

func (pq *arrayPQ[E]) Len() int { return len(pq.arr) }

func (pq *arrayPQ[E]) Less(i, j int) bool {
	return pq.comparator(pq.arr[i], pq.arr[j]) < 0
}

func (pq *arrayPQ[E]) Swap(i, j int) {
	pq.arr[i], pq.arr[j] = pq.arr[j], pq.arr[i]
	pq.arr[i].SetIndex(int64(i))
	pq.arr[j].SetIndex(int64(j))
}

func (pq *arrayPQ[E]) Pop() any {
	n := len(pq.arr)
	if n <= 0 {
		return nil
	}
	item := pq.arr[n-1]
	item.SetIndex(-1)
	pq.arr[n-1] = nil
	pq.arr = pq.arr[:n-1]
	return item
}

func (pq *arrayPQ[E]) Push(i any) {
	item, ok := i.(PQItem[E])
	if !ok {
		return
	}
	item.SetIndex(int64(len(pq.arr)))
	pq.arr = append(pq.arr, item)
}

type ArrayPriorityQueue[E comparable] struct {
	queue    *arrayPQ[E]
	lock     *sync.Mutex
	capacity int
}

func (pq *ArrayPriorityQueue[E]) Len() int64 {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return int64(len(pq.queue.arr))
}

func (pq *ArrayPriorityQueue[E]) Push(item PQItem[E]) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	heap.Push(pq.queue, item)
}

func (pq *ArrayPriorityQueue[E]) Pop() ReadOnlyPQItem[E] {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	if len(pq.queue.arr) == 0 {
		return nil
	}
	return heap.Pop(pq.queue).(ReadOnlyPQItem[E])
}

func (pq *ArrayPriorityQueue[E]) Peek() ReadOnlyPQItem[E] {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	if len(pq.queue.arr) == 0 {
		return nil
	}
	return pq.queue.arr[0]
}

type ArrayPriorityQueueOption[E comparable] func(*ArrayPriorityQueue[E])

func WithArrayPriorityQueueCapacity[E comparable](capacity int) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if capacity > 0 {
			pq.capacity = capacity
		}
	}
}

func WithArrayPriorityQueueComparator[E comparable](fn PQItemComparator[E]) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if fn != nil {
			pq.queue.comparator = fn
		}
	}
}

func WithArrayPriorityQueueEnableThreadSafe[E comparable]() ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		pq.lock = &sync.Mutex{}
	}
}

func NewArrayPriorityQueue[E comparable](opts ...ArrayPriorityQueueOption[E]) PriorityQueue[E] {
	pq := &ArrayPriorityQueue[E]{
		queue:    new(arrayPQ[E]),
		capacity: 64,
	}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}
	if pq.queue.comparator == nil {
		pq.queue.comparator = minPriorityComparator[E]
	}
	pq.queue.arr = make([]PQItem[E], 0, pq.capacity)
	return pq
}
