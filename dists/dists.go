/*package dists evaluates bonded internal coordinates over whole tuple lists
so that their distributions can be histogrammed. The geometry kernel itself
works one tuple at a time; the batching and the worker fan-out live here. */
package dists

import (
	"runtime"

	"github.com/mdkit/cggeom/geom"
)

// Calc evaluates internal coordinates for a fixed snapshot. The position
// slice is read-only and shared by all workers; every worker writes to a
// disjoint range of the output, so no locking is needed.
type Calc struct {
	box     *geom.Box
	pos     []geom.Vec
	workers int
}

// NewCalc creates a Calc for one snapshot. If workers is zero or negative,
// one worker per core is used.
func NewCalc(box *geom.Box, pos []geom.Vec, workers int) *Calc {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Calc{box: box, pos: pos, workers: workers}
}

// Bonds computes the minimum-image distance of every pair in pairs.
func (c *Calc) Bonds(pairs [][2]int) []float64 {
	out := make([]float64, len(pairs))
	c.each(len(pairs), func(i int) {
		out[i] = c.box.Distance(c.pos, pairs[i][0], pairs[i][1])
	})
	return out
}

// Angles computes the angle, in degrees, of every triple in triples. The
// third index of each triple is the vertex.
func (c *Calc) Angles(triples [][3]int) []float64 {
	out := make([]float64, len(triples))
	c.each(len(triples), func(i int) {
		tr := &triples[i]
		out[i] = c.box.Angle(c.pos, tr[0], tr[1], tr[2])
	})
	return out
}

// Dihedrals computes the torsion angle, in degrees, of every quadruple in
// quads.
func (c *Calc) Dihedrals(quads [][4]int) []float64 {
	out := make([]float64, len(quads))
	c.each(len(quads), func(i int) {
		q := &quads[i]
		out[i] = c.box.Dihedral(c.pos, q[0], q[1], q[2], q[3])
	})
	return out
}

// each runs f for every index in [0, n), split contiguously across the
// workers. Worker IDs are collected from the done channel before returning.
func (c *Calc) each(n int, f func(i int)) {
	workers := c.workers
	if workers > n {
		workers = 1
	}

	done := make(chan int, workers)
	for id := 0; id < workers; id++ {
		lo, hi := n*id/workers, n*(id+1)/workers
		go func(id, lo, hi int) {
			for i := lo; i < hi; i++ {
				f(i)
			}
			done <- id
		}(id, lo, hi)
	}
	for i := 0; i < workers; i++ {
		<-done
	}
}
