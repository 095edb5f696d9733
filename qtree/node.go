package qtree

import (
	"github.com/dimonp/quadtree/qmath"
)

// noChild marks an unlinked child slot. Children are stored as arena
// indices rather than pointers so the node storage stays relocatable.
const noChild = int32(-1)

// Node represents one cell of the subdivided volume. A node holds at
// most one element; presence is tracked explicitly instead of relying
// on the element's zero value.
type Node[T any] struct {
	tree     *Tree[T]
	bbox     qmath.BBox3
	children [4]int32

	element    T
	hasElement bool
}

// initialize derives the node's bounding box from the tree's root box
// and base cell size, then wires and recursively initializes the four
// children unless this is a leaf level.
func (n *Node[T]) initialize(tree *Tree[T], level uint8, col, row uint16) {
	n.tree = tree
	n.children = [4]int32{noChild, noChild, noChild, noChild}
	n.hasElement = false
	var zero T
	n.element = zero

	levelFactor := (float32)(int(1) << (tree.treeDepth - 1 - level))

	baseSize := tree.baseNodeSize
	treeMin := tree.rootBBox.GetMin()
	treeMax := tree.rootBBox.GetMax()

	min := qmath.NewVector3f(
		treeMin.GetX()+(float32)(col)*levelFactor*baseSize.GetX(),
		treeMin.GetY(),
		treeMin.GetZ()+(float32)(row)*levelFactor*baseSize.GetZ(),
	)
	max := qmath.NewVector3f(
		treeMin.GetX()+(float32)(col+1)*levelFactor*baseSize.GetX(),
		treeMax.GetY(),
		treeMin.GetZ()+(float32)(row+1)*levelFactor*baseSize.GetZ(),
	)
	n.bbox = qmath.NewBBox3(min, max)

	childLevel := level + 1
	if childLevel < tree.treeDepth {
		for i := 0; i < 4; i++ {
			childCol := 2*col + (uint16)(i&1)
			childRow := 2*row + (uint16)((i&2)>>1)
			childIndex := tree.CalculateNodeIndex(childLevel, childCol, childRow)
			n.children[i] = (int32)(childIndex)
			tree.nodes[childIndex].initialize(tree, childLevel, childCol, childRow)
		}
	}
}

func (n *Node[T]) GetBBox() qmath.BBox3 {
	return n.bbox
}

// FindContainmentNodeRecursive returns the smallest node in this
// subtree whose cell fully contains checkBox, or nil if this node does
// not contain it. Children are probed in fixed order; their cells are
// disjoint, so at most one can claim a box of non-zero size.
func (n *Node[T]) FindContainmentNodeRecursive(checkBox qmath.BBox3) *Node[T] {
	if !n.bbox.Contains(checkBox) {
		return nil
	}

	if n.HasChildren() {
		for i := 0; i < 4; i++ {
			if found := n.GetChildAt(i).FindContainmentNodeRecursive(checkBox); found != nil {
				return found
			}
		}
	}

	// Not contained by any child, but still contained by this node.
	return n
}

func (n *Node[T]) SetElement(element T) {
	n.element = element
	n.hasElement = true
}

// ClearElement removes the node's element and marks the slot empty.
func (n *Node[T]) ClearElement() {
	var zero T
	n.element = zero
	n.hasElement = false
}

// GetElement returns the node's element and whether one is present.
func (n *Node[T]) GetElement() (T, bool) {
	return n.element, n.hasElement
}

// GetChildAt returns the child in the given quadrant slot, or nil for
// a leaf. Panics if index is not in [0, 4).
func (n *Node[T]) GetChildAt(index int) *Node[T] {
	if index < 0 || index >= 4 {
		panic("qtree: child index out of bounds")
	}

	ci := n.children[index]
	if ci == noChild {
		return nil
	}
	return &n.tree.nodes[ci]
}

// HasChildren reports whether the node has children. Children are
// either all linked or all absent, so checking the first slot suffices.
func (n *Node[T]) HasChildren() bool {
	return n.children[0] != noChild
}

// OptimizeRecursive detaches every child subtree that holds no element
// anywhere, in post order, and reports whether this node or any
// retained descendant holds an element. Detaching only clears the
// child linkage; the arena keeps the nodes, so indices stay valid and
// a re-Initialize restores the full topology. Not safe to run
// concurrently with traversals.
func (n *Node[T]) OptimizeRecursive() bool {
	occupied := n.hasElement

	if n.HasChildren() {
		keep := false
		for i := 0; i < 4; i++ {
			if n.GetChildAt(i).OptimizeRecursive() {
				keep = true
			}
		}

		if keep {
			occupied = true
		} else {
			n.children = [4]int32{noChild, noChild, noChild, noChild}
		}
	}

	return occupied
}
