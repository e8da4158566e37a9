package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/benz9527/xcoll/lib/infra"
)

func isBlack[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return isNilLeaf[K, V](node) || node.Color() == Black
}

func isRed[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return !isNilLeaf[K, V](node) && node.Color() == Red
}

func isNilLeaf[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return node == nil || (!node.HasKeyVal() && node.Parent() == nil && node.Left() == nil && node.Right() == nil)
}

func isRoot[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return node != nil && node.Parent() == nil
}

// minNode and maxNode walk an RBNode subtree through the read-only
// accessors, they back the iterator so it stays independent of the
// concrete node layout.
func minNode[K infra.OrderedKey, V any](node RBNode[K, V]) RBNode[K, V] {
	if isNilLeaf[K, V](node) {
		return nil
	}
	aux := node
	for aux.Left() != nil {
		aux = aux.Left()
	}
	return aux
}

func maxNode[K infra.OrderedKey, V any](node RBNode[K, V]) RBNode[K, V] {
	if isNilLeaf[K, V](node) {
		return nil
	}
	aux := node
	for aux.Right() != nil {
		aux = aux.Right()
	}
	return aux
}

func succNode[K infra.OrderedKey, V any](node RBNode[K, V]) RBNode[K, V] {
	if isNilLeaf[K, V](node) {
		return nil
	}
	if node.Right() != nil {
		return minNode[K, V](node.Right())
	}
	x, aux := node, node.Parent()
	for aux != nil && x == aux.Right() {
		x = aux
		aux = aux.Parent()
	}
	return aux
}

func predNode[K infra.OrderedKey, V any](node RBNode[K, V]) RBNode[K, V] {
	if isNilLeaf[K, V](node) {
		return nil
	}
	if node.Left() != nil {
		return maxNode[K, V](node.Left())
	}
	x, aux := node, node.Parent()
	for aux != nil && x == aux.Left() {
		x = aux
		aux = aux.Parent()
	}
	return aux
}

func blackDepthTo[K infra.OrderedKey, V any](target, to RBNode[K, V]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[K, V](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities, exported as test tooling for the
// property sweeps of this package and of the containers wrapping it.

// RedViolationValidate walks the tree inorder and reports the first
// red node carrying a red parent or a red child (p3), and a red root.
func RedViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	size := tree.Len()
	var aux RBNode[K, V] = tree.Root()
	if size < 0 || aux == nil {
		return nil
	}
	if isRed[K, V](tree.Root()) {
		return errors.New("rbtree red violation (red root)")
	}

	stack := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[K, V](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[K, V](aux) {
			if isRed[K, V](aux.Parent()) ||
				(isRed[K, V](aux.Left()) || isRed[K, V](aux.Right())) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load the nodes owning at least one nil child, the
// black depth probes of BlackViolationValidate start there.
func bfsLeaves[K infra.OrderedKey, V any](tree RBTree[K, V]) []RBNode[K, V] {
	size := tree.Len()
	var aux RBNode[K, V] = tree.Root()
	if size < 0 || isNilLeaf[K, V](aux) {
		return nil
	}

	leaves := make([]RBNode[K, V], 0, size>>1+1)
	queue := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if isNilLeaf[K, V](l) || isNilLeaf[K, V](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[K, V](l) {
			queue = append(queue, l)
		}
		if !isNilLeaf[K, V](r) {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

// BlackViolationValidate probes the black depth from every node owning
// a nil child up to the root and reports the first mismatch (p4).
func BlackViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	leaves := bfsLeaves[K, V](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K, V](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K, V](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// OrderViolationValidate checks that the inorder key sequence is
// strictly increasing under cmp (BST order plus the no-duplicates
// contract). A nil cmp falls back to the natural ascending order.
func OrderViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V], cmp infra.OrderedKeyComparator[K]) error {
	if cmp == nil {
		cmp = infra.NaturalOrderComparator[K]()
	}
	var (
		prev K
		err  error
	)
	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		if idx > 0 && cmp(prev, key) >= 0 {
			err = errors.New("rbtree bst order violation")
			return false
		}
		prev = key
		return true
	})
	return err
}

// Validate joins all structural checks, the aggregated error carries
// every violation found.
func Validate[K infra.OrderedKey, V any](tree RBTree[K, V], cmp infra.OrderedKeyComparator[K]) error {
	return multierr.Combine(
		RedViolationValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
		OrderViolationValidate[K, V](tree, cmp),
	)
}
