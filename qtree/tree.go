// Package qtree implements a fixed-depth quadtree for spatial queries
// in 3D space. The tree subdivides a bounding volume into four
// quadrants per level along the x and z axes; the y axis always spans
// the full root extent. All nodes are allocated in a single flat arena
// at initialization and children are linked by index, so the topology
// is immutable and safe for concurrent readers once Initialize
// returns. Element writes are not synchronized and must be serialized
// externally against concurrent traversals.
package qtree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/dimonp/quadtree/qmath"
)

// Error types reported by the checked tree operations.
const (
	ErrTypeInvalidDepth    = "quadtree_invalid_depth"
	ErrTypeIndexOutOfRange = "quadtree_index_out_of_range"
	ErrTypeNotInitialized  = "quadtree_not_initialized"
)

// Tree is a quadtree storing one element of type T per node. The zero
// value is an uninitialized tree; call Initialize before use.
type Tree[T any] struct {
	nodes        []Node[T]
	rootBBox     qmath.BBox3
	treeDepth    uint8
	baseNodeSize qmath.Vector3f
}

// Initialize builds the complete node set for the given root box and
// depth and links every node to its children. A tree that was already
// initialized is rebuilt from scratch. Panics if depth is 0.
func (t *Tree[T]) Initialize(box qmath.BBox3, depth uint8) {
	if depth == 0 {
		panic("qtree: tree depth must be greater than 0")
	}

	t.treeDepth = depth
	t.rootBBox = box

	// The base node size is the cell footprint at the deepest level.
	// Node boxes are derived from it top-down to avoid accumulating
	// floating point error from repeated halving.
	baseDimension := (float32)(int(1) << (depth - 1))
	size := box.GetSize()
	t.baseNodeSize = qmath.NewVector3f(
		size.GetX()/baseDimension,
		size.GetY(),
		size.GetZ()/baseDimension,
	)

	numNodes := t.CalculateNumberNodes(depth)
	t.nodes = make([]Node[T], numNodes)
	t.nodes[0].initialize(t, 0, 0, 0)

	instrumentInitialize(numNodes)

	logs.WithTag("depth", depth).
		WithTag("node_count", numNodes).
		Debug("quadtree initialized")
}

// TryInitialize is the checked variant of Initialize for depth values
// originating outside the caller's control.
func (t *Tree[T]) TryInitialize(box qmath.BBox3, depth uint8) error {
	if depth == 0 {
		return errors.New("tree depth must be greater than 0").
			WithType(ErrTypeInvalidDepth).
			WithTag("depth", depth)
	}

	t.Initialize(box, depth)
	return nil
}

// Reset discards all nodes and returns the tree to its uninitialized
// state. Node references obtained before the reset must not be used
// afterwards.
func (t *Tree[T]) Reset() {
	t.nodes = nil
	t.rootBBox = qmath.BBox3{}
	t.treeDepth = 0
	t.baseNodeSize = qmath.Vector3f{}

	instrumentReset()
}

func (t *Tree[T]) GetRootBBox() qmath.BBox3 {
	return t.rootBBox
}

func (t *Tree[T]) GetTreeDepth() uint8 {
	return t.treeDepth
}

// CalculateNumberNodes returns the total node count of levels
// [0, level), which is also the index offset at which level begins.
// Formula: (4^level - 1) / 3, with 4^n computed as 1 << 2n.
func (t *Tree[T]) CalculateNumberNodes(level uint8) int {
	return ((1 << (2 * int(level))) - 1) / 3
}

// CalculateNodeIndex returns the arena index of the node at the given
// level, column and row. The level block is laid out row major. Panics
// if column or row is out of range for the level.
func (t *Tree[T]) CalculateNodeIndex(level uint8, col, row uint16) int {
	if int(col) >= 1<<level || int(row) >= 1<<level {
		panic("qtree: column or row out of bounds for the specified level")
	}

	return t.CalculateNumberNodes(level) + int(row)<<level + int(col)
}

// TryCalculateNodeIndex is the checked variant of CalculateNodeIndex.
func (t *Tree[T]) TryCalculateNodeIndex(level uint8, col, row uint16) (int, error) {
	if int(col) >= 1<<level || int(row) >= 1<<level {
		return 0, errors.New("column or row out of bounds for the specified level").
			WithType(ErrTypeIndexOutOfRange).
			WithTag("level", level).
			WithTag("col", col).
			WithTag("row", row)
	}

	return t.CalculateNodeIndex(level, col, row), nil
}

func (t *Tree[T]) GetNumberNodes() int {
	return len(t.nodes)
}

func (t *Tree[T]) GetRootNode() *Node[T] {
	if len(t.nodes) == 0 {
		panic("qtree: tree is not initialized")
	}
	return &t.nodes[0]
}

// GetNodeByIndex returns the node at the given arena index. Panics if
// the index is out of bounds.
func (t *Tree[T]) GetNodeByIndex(index int) *Node[T] {
	if index < 0 || index >= len(t.nodes) {
		panic("qtree: node index out of bounds")
	}
	return &t.nodes[index]
}

// TryGetNodeByIndex is the checked variant of GetNodeByIndex.
func (t *Tree[T]) TryGetNodeByIndex(index int) (*Node[T], error) {
	if len(t.nodes) == 0 {
		return nil, errors.New("tree is not initialized").
			WithType(ErrTypeNotInitialized)
	}
	if index < 0 || index >= len(t.nodes) {
		return nil, errors.New("node index out of bounds").
			WithType(ErrTypeIndexOutOfRange).
			WithTag("index", index).
			WithTag("node_count", len(t.nodes))
	}

	return &t.nodes[index], nil
}

// FindContainmentNode returns the smallest node whose cell fully
// contains the given box, or nil if even the root does not contain it.
func (t *Tree[T]) FindContainmentNode(box qmath.BBox3) *Node[T] {
	if len(t.nodes) == 0 {
		panic("qtree: tree is not initialized")
	}

	instrumentQuery(queryTypeContainment)
	return t.GetRootNode().FindContainmentNodeRecursive(box)
}
