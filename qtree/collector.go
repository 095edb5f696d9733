package qtree

import (
	"github.com/dimonp/quadtree/qmath"
)

// CollectByFrustum gathers the elements of every node under start
// whose cell intersects the view volume of the given view-projection
// matrix. The destination slice is truncated before collecting and
// returned, so callers can reuse its capacity across calls.
//
// Nodes classified Outside are pruned together with their whole
// subtree. Nodes classified Inside switch to an unconditional subtree
// collection: containment is monotonic, so every descendant of an
// Inside node is Inside as well and its clip test can be skipped.
func CollectByFrustum[T any](start *Node[T], viewProjection qmath.Matrix44, collected []T) []T {
	instrumentQuery(queryTypeFrustum)

	collected = collected[:0]
	return recurseCollectByFrustum(start, viewProjection, collected)
}

// CollectByLineIntersect gathers the elements of every node under
// start whose cell intersects the finite segment. The destination
// slice is truncated before collecting and returned.
func CollectByLineIntersect[T any](start *Node[T], line qmath.Line3, collected []T) []T {
	instrumentQuery(queryTypeLineIntersect)

	collected = collected[:0]
	return recurseLineIntersect(start, line, collected)
}

func recurseCollectByFrustum[T any](node *Node[T], viewProjection qmath.Matrix44, collected []T) []T {
	switch node.GetBBox().ClipStatus(viewProjection) {
	case qmath.Outside:
		return collected

	case qmath.Inside:
		return recurseCollectAllNodes(node, collected)
	}

	if element, ok := node.GetElement(); ok {
		collected = append(collected, element)
	}

	if node.HasChildren() {
		for i := 0; i < 4; i++ {
			collected = recurseCollectByFrustum(node.GetChildAt(i), viewProjection, collected)
		}
	}
	return collected
}

func recurseCollectAllNodes[T any](node *Node[T], collected []T) []T {
	if element, ok := node.GetElement(); ok {
		collected = append(collected, element)
	}

	if node.HasChildren() {
		for i := 0; i < 4; i++ {
			collected = recurseCollectAllNodes(node.GetChildAt(i), collected)
		}
	}
	return collected
}

func recurseLineIntersect[T any](node *Node[T], line qmath.Line3, collected []T) []T {
	if !node.GetBBox().TestIntersection(line) {
		return collected
	}

	if element, ok := node.GetElement(); ok {
		collected = append(collected, element)
	}

	if node.HasChildren() {
		for i := 0; i < 4; i++ {
			collected = recurseLineIntersect(node.GetChildAt(i), line, collected)
		}
	}
	return collected
}
