package tree

import "forestlab/forest/split"

// Node is the sum type for a tree node: exactly one of LeafNode or
// InternalNode. isNode is unexported so no type outside this package
// can implement the interface, keeping the two variants sealed.
type Node interface {
	isNode()
}

// LeafNode carries the predicted class and the training sample count
// that reached it.
type LeafNode struct {
	Class   int
	Samples int
}

func (*LeafNode) isNode() {}

// InternalNode carries the chosen attribute, its split descriptor, and
// both children. Both children are always present; a node with no
// children is a LeafNode instead.
type InternalNode struct {
	Attribute int
	Split     split.Descriptor
	Left      Node
	Right     Node
	Samples   int
}

func (*InternalNode) isNode() {}
