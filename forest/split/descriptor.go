package split

import (
	"fmt"
	"sort"
	"strings"
)

// Descriptor is the sum type for the two ways a binary split can route a
// sample: a numeric threshold or a categorical set. Exactly one variant
// is active for a given internal node; the unexported sealed() method
// keeps the set of implementations closed to this package.
type Descriptor interface {
	// GoesLeft reports whether a sample with the given attribute value
	// is routed to the left child.
	GoesLeft(value float64) bool
	// Describe renders the split condition for DOT serialisation, e.g.
	// "<= 1.500" or "in {1,2,3}".
	Describe() string
	sealed()
}

// Threshold is a numeric split: value <= Value routes left.
type Threshold struct {
	Value float64
}

func (t Threshold) GoesLeft(value float64) bool { return value <= t.Value }
func (t Threshold) Describe() string            { return fmt.Sprintf("<= %.3f", t.Value) }
func (Threshold) sealed()                       {}

// CategorySet is a categorical split: membership in Categories routes
// left. Values are truncated to whole numbers before the membership
// test, per the dataset's categorical-column contract.
type CategorySet struct {
	Categories map[int]struct{}
}

func (c CategorySet) GoesLeft(value float64) bool {
	_, ok := c.Categories[int(value)]
	return ok
}

func (CategorySet) sealed() {}

func (c CategorySet) Describe() string {
	ids := make([]int, 0, len(c.Categories))
	for id := range c.Categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "in {" + strings.Join(parts, ",") + "}"
}
