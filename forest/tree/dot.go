package tree

import (
	"fmt"
	"strings"
)

// DOT renders the tree as a Graphviz digraph. Leaves are colored by
// predicted class and labeled with their training sample count;
// internal nodes are labeled with the feature name (or "Feat i" when no
// names were supplied), the split condition, and the training sample
// count. This is a read-only traversal, external to the learning
// contract.
func (t *DecisionTree) DOT() string {
	var b strings.Builder
	b.WriteString("digraph DecisionTree {\n")
	b.WriteString("  node [shape=box];\n")
	counter := 0
	t.writeNode(&b, t.Root, &counter)
	b.WriteString("}\n")
	return b.String()
}

func (t *DecisionTree) writeNode(b *strings.Builder, n Node, counter *int) string {
	id := fmt.Sprintf("n%d", *counter)
	*counter++

	switch v := n.(type) {
	case *LeafNode:
		color := "lightcoral"
		if v.Class == 1 {
			color = "lightgreen"
		}
		fmt.Fprintf(b, "  %s [label=\"class=%d\\nsamples=%d\" style=filled fillcolor=%s];\n",
			id, v.Class, v.Samples, color)
	case *InternalNode:
		name := t.featureName(v.Attribute)
		fmt.Fprintf(b, "  %s [label=\"%s %s\\nsamples=%d\"];\n",
			id, name, v.Split.Describe(), v.Samples)

		leftID := t.writeNode(b, v.Left, counter)
		rightID := t.writeNode(b, v.Right, counter)
		fmt.Fprintf(b, "  %s -> %s [label=\"True\"];\n", id, leftID)
		fmt.Fprintf(b, "  %s -> %s [label=\"False\"];\n", id, rightID)
	}

	return id
}

func (t *DecisionTree) featureName(a int) string {
	if t.featureNames != nil && a < len(t.featureNames) {
		return t.featureNames[a]
	}
	return fmt.Sprintf("Feat %d", a)
}
