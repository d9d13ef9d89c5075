package graph

import "iter"

// listArc is one entry in a node's out-arc slice.
type listArc[W Weight] struct {
	to     int
	weight W
}

// listStore is the sparse backend: one out-arc slice per node. Memory is
// proportional to the number of stored arcs; lookups and updates scan the
// source node's slice, so they cost O(degree).
type listStore[W Weight] struct {
	out   [][]listArc[W]
	count int
}

func newListStore[W Weight](nodeCount int) *listStore[W] {
	return &listStore[W]{out: make([][]listArc[W], nodeCount)}
}

func (s *listStore[W]) insert(from, to int, w W) {
	s.out[from] = append(s.out[from], listArc[W]{to: to, weight: w})
	s.count++
}

func (s *listStore[W]) update(from, to int, w W) {
	for i := range s.out[from] {
		if s.out[from][i].to == to {
			s.out[from][i].weight = w
			return
		}
	}
}

func (s *listStore[W]) arc(from, to int) (W, bool) {
	for _, a := range s.out[from] {
		if a.to == to {
			return a.weight, true
		}
	}
	var zero W
	return zero, false
}

func (s *listStore[W]) neighbors(from int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		for _, a := range s.out[from] {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}

func (s *listStore[W]) arcs() iter.Seq[Arc[W]] {
	return func(yield func(Arc[W]) bool) {
		for from, list := range s.out {
			for _, a := range list {
				if !yield(Arc[W]{From: from, To: a.to, Weight: a.weight}) {
					return
				}
			}
		}
	}
}

func (s *listStore[W]) arcCount() int { return s.count }
