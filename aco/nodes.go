package aco

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Node pairs a caller-facing label with the payload the distance function
// understands (coordinates, an ID in an external service, ...).
type Node[L comparable, P any] struct {
	Label   L
	Payload P
}

// SortedNodes turns a label→payload map into a node slice ordered by label,
// so runs over the same map are reproducible.
func SortedNodes[L cmp.Ordered, P any](m map[L]P) []Node[L, P] {
	labels := slices.Sorted(maps.Keys(m))
	out := make([]Node[L, P], len(labels))
	for i, l := range labels {
		out[i] = Node[L, P]{Label: l, Payload: m[l]}
	}

	return out
}

// nodeIndex is the bijection between labels and dense indices [0, N).
// Index i is the position of the node in the caller's slice.
type nodeIndex[L comparable] struct {
	labels []L
	pos    map[L]int
}

func newNodeIndex[L comparable, P any](nodes []Node[L, P]) (*nodeIndex[L], error) {
	idx := &nodeIndex[L]{
		labels: make([]L, len(nodes)),
		pos:    make(map[L]int, len(nodes)),
	}
	for i, n := range nodes {
		if _, dup := idx.pos[n.Label]; dup {
			return nil, fmt.Errorf("label %v: %w", n.Label, ErrDuplicateLabel)
		}
		idx.pos[n.Label] = i
		idx.labels[i] = n.Label
	}

	return idx, nil
}

func (x *nodeIndex[L]) len() int { return len(x.labels) }

func (x *nodeIndex[L]) indexOf(l L) (int, bool) {
	i, ok := x.pos[l]
	return i, ok
}

// translate maps a route of indices back to labels.
func (x *nodeIndex[L]) translate(route []int) []L {
	out := make([]L, len(route))
	for k, i := range route {
		out[k] = x.labels[i]
	}

	return out
}
