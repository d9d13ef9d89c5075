package graph

import "iter"

// matrixStore is the dense backend: a single row-major n×n weight slice
// with a parallel presence slice (the zero weight is a valid arc weight,
// so presence needs its own bit). Point operations are O(1), neighbor
// scans O(n), memory O(n²) no matter how many arcs exist.
type matrixStore[W Weight] struct {
	n       int
	weights []W
	present []bool
	count   int
}

func newMatrixStore[W Weight](nodeCount int) *matrixStore[W] {
	return &matrixStore[W]{
		n:       nodeCount,
		weights: make([]W, nodeCount*nodeCount),
		present: make([]bool, nodeCount*nodeCount),
	}
}

func (s *matrixStore[W]) cell(from, to int) int { return from*s.n + to }

// insert and update are the same single cell write; the facade enforces
// the present/absent distinction before calling either.
func (s *matrixStore[W]) insert(from, to int, w W) {
	i := s.cell(from, to)
	if !s.present[i] {
		s.present[i] = true
		s.count++
	}
	s.weights[i] = w
}

func (s *matrixStore[W]) update(from, to int, w W) {
	s.insert(from, to, w)
}

func (s *matrixStore[W]) arc(from, to int) (W, bool) {
	i := s.cell(from, to)
	if !s.present[i] {
		var zero W
		return zero, false
	}
	return s.weights[i], true
}

func (s *matrixStore[W]) neighbors(from int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		row := from * s.n
		for to := 0; to < s.n; to++ {
			if s.present[row+to] && !yield(to, s.weights[row+to]) {
				return
			}
		}
	}
}

func (s *matrixStore[W]) arcs() iter.Seq[Arc[W]] {
	return func(yield func(Arc[W]) bool) {
		for from := 0; from < s.n; from++ {
			row := from * s.n
			for to := 0; to < s.n; to++ {
				if s.present[row+to] && !yield(Arc[W]{From: from, To: to, Weight: s.weights[row+to]}) {
					return
				}
			}
		}
	}
}

func (s *matrixStore[W]) arcCount() int { return s.count }
