package vector

const blockSize = 64

// block holds a fixed window of items. Front pushes fill a block from
// its tail down, back pushes from its head up, so both ends stay O(1).
type block[T any] struct {
	items [blockSize]T
}

// BlockList is a deque over fixed-size blocks. Random access resolves
// an index to (block, offset) in constant time, and neither end's
// push/pop moves existing elements.
//
//	blocks |  b0  |  b1  |  b2  |
//	        ^head offset        ^tail offset
type BlockList[T any] struct {
	blocks []*block[T]
	// headOff is the index of the first live item inside blocks[0].
	headOff int
	length  int
}

func (bl *BlockList[T]) Len() int {
	return bl.length
}

func (bl *BlockList[T]) locate(i int) (bi, off int) {
	abs := bl.headOff + i
	return abs / blockSize, abs % blockSize
}

func (bl *BlockList[T]) At(i int) T {
	if i < 0 || i >= bl.length {
		panic("[block-list] index access out of range")
	}
	bi, off := bl.locate(i)
	return bl.blocks[bi].items[off]
}

func (bl *BlockList[T]) PushBack(item T) {
	tail := bl.headOff + bl.length
	if tail == len(bl.blocks)*blockSize {
		bl.blocks = append(bl.blocks, &block[T]{})
	}
	bi, off := tail/blockSize, tail%blockSize
	bl.blocks[bi].items[off] = item
	bl.length++
}

func (bl *BlockList[T]) PushFront(item T) {
	if bl.headOff == 0 {
		blocks := make([]*block[T], 0, len(bl.blocks)+1)
		blocks = append(blocks, &block[T]{})
		blocks = append(blocks, bl.blocks...)
		bl.blocks = blocks
		bl.headOff = blockSize
	}
	bl.headOff--
	bl.blocks[0].items[bl.headOff] = item
	bl.length++
}

func (bl *BlockList[T]) PopFront() (T, bool) {
	var zero T
	if bl.length == 0 {
		return zero, false
	}
	item := bl.blocks[0].items[bl.headOff]
	bl.blocks[0].items[bl.headOff] = zero
	bl.headOff++
	bl.length--
	if bl.headOff == blockSize {
		// The first block drained completely, drop it.
		bl.blocks[0] = nil
		bl.blocks = bl.blocks[1:]
		bl.headOff = 0
	}
	if bl.length == 0 && bl.headOff != 0 {
		bl.headOff = 0
		bl.blocks = bl.blocks[:0]
	}
	return item, true
}

func (bl *BlockList[T]) PopBack() (T, bool) {
	var zero T
	if bl.length == 0 {
		return zero, false
	}
	tail := bl.headOff + bl.length - 1
	bi, off := tail/blockSize, tail%blockSize
	item := bl.blocks[bi].items[off]
	bl.blocks[bi].items[off] = zero
	bl.length--
	if off == 0 && bi == len(bl.blocks)-1 {
		// The last block emptied, drop it.
		bl.blocks[bi] = nil
		bl.blocks = bl.blocks[:bi]
	}
	if bl.length == 0 {
		bl.headOff = 0
		bl.blocks = bl.blocks[:0]
	}
	return item, true
}

func (bl *BlockList[T]) Foreach(action func(i int, item T) bool) {
	for i := 0; i < bl.length; i++ {
		bi, off := bl.locate(i)
		if goOn := action(i, bl.blocks[bi].items[off]); !goOn {
			return
		}
	}
}

func NewBlockList[T any]() *BlockList[T] {
	return &BlockList[T]{}
}
