package vector

// Vector is a bounds-checked dynamic array. Growth mirrors the runtime
// slice policy, doubling for small arrays then 1.25x once the backing
// store passes the threshold.
type Vector[T any] struct {
	items []T
}

const vectorGrowThreshold = 1024

func (v *Vector[T]) Len() int {
	return len(v.items)
}

func (v *Vector[T]) Cap() int {
	return cap(v.items)
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= len(v.items) {
		panic("[vector] index access out of range")
	}
}

func (v *Vector[T]) grow(atLeast int) {
	newCap := cap(v.items)
	if newCap == 0 {
		newCap = 4
	}
	for newCap < atLeast {
		if newCap < vectorGrowThreshold {
			newCap <<= 1
		} else {
			newCap += newCap >> 2
		}
	}
	items := make([]T, len(v.items), newCap)
	copy(items, v.items)
	v.items = items
}

func (v *Vector[T]) Append(item T) {
	if len(v.items) == cap(v.items) {
		v.grow(len(v.items) + 1)
	}
	v.items = append(v.items, item)
}

// Insert shifts the tail right and places item at index i.
// i == Len() appends.
func (v *Vector[T]) Insert(i int, item T) {
	if i < 0 || i > len(v.items) {
		panic("[vector] insert index out of range")
	}
	if len(v.items) == cap(v.items) {
		v.grow(len(v.items) + 1)
	}
	var zero T
	v.items = append(v.items, zero)
	copy(v.items[i+1:], v.items[i:])
	v.items[i] = item
}

func (v *Vector[T]) RemoveAt(i int) T {
	v.checkIndex(i)
	item := v.items[i]
	copy(v.items[i:], v.items[i+1:])
	var zero T
	v.items[len(v.items)-1] = zero
	v.items = v.items[:len(v.items)-1]
	return item
}

func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.items[i]
}

func (v *Vector[T]) Set(i int, item T) {
	v.checkIndex(i)
	v.items[i] = item
}

func (v *Vector[T]) Foreach(action func(i int, item T) bool) {
	for i, item := range v.items {
		if goOn := action(i, item); !goOn {
			return
		}
	}
}

func NewVector[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{items: make([]T, 0, capacity)}
}
