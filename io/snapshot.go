/*package io reads text snapshots and tuple lists and writes distribution
files. Binary trajectory formats are the caller's problem; everything here is
whitespace-separated columns. */
package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/mdkit/cggeom/geom"
)

// ReadSnapshot reads particle positions from a text file with one
// "x y z" row per particle. Lines starting with # are skipped.
func ReadSnapshot(file string) ([]geom.Vec, error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	pos := make([]geom.Vec, len(xs))
	for i := range pos {
		pos[i] = geom.Vec{xs[i], ys[i], zs[i]}
	}
	return pos, nil
}

// readTupleCols reads the first arity columns of a tuple list and casts them
// to particle indices, checking they are in range for n particles.
func readTupleCols(file string, arity, n int) ([][]int, error) {
	colIdxs := make([]int, arity)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	out := make([][]int, len(cols[0]))
	for i := range out {
		out[i] = make([]int, arity)
		for j := 0; j < arity; j++ {
			id := int(cols[j][i])
			if id < 0 || id >= n {
				return nil, fmt.Errorf(
					"Tuple %d in '%s' names particle %d, but the snapshot "+
						"only has %d particles.", i, file, id, n,
				)
			}
			out[i][j] = id
		}
	}
	return out, nil
}

// ReadPairs reads a two-column bond tuple list.
func ReadPairs(file string, n int) ([][2]int, error) {
	raw, err := readTupleCols(file, 2, n)
	if err != nil {
		return nil, err
	}
	out := make([][2]int, len(raw))
	for i, tup := range raw {
		out[i] = [2]int{tup[0], tup[1]}
	}
	return out, nil
}

// ReadTriples reads a three-column angle tuple list. The third column is the
// vertex particle.
func ReadTriples(file string, n int) ([][3]int, error) {
	raw, err := readTupleCols(file, 3, n)
	if err != nil {
		return nil, err
	}
	out := make([][3]int, len(raw))
	for i, tup := range raw {
		out[i] = [3]int{tup[0], tup[1], tup[2]}
	}
	return out, nil
}

// ReadQuads reads a four-column dihedral tuple list.
func ReadQuads(file string, n int) ([][4]int, error) {
	raw, err := readTupleCols(file, 4, n)
	if err != nil {
		return nil, err
	}
	out := make([][4]int, len(raw))
	for i, tup := range raw {
		out[i] = [4]int{tup[0], tup[1], tup[2], tup[3]}
	}
	return out, nil
}
