package geom

// Box is a periodic orthorhombic simulation cell, described by half the cell
// length along each axis. All half lengths must be positive.
type Box struct {
	Half Vec
}

// NewBox creates a Box from full cell side lengths.
func NewBox(lx, ly, lz float64) *Box {
	return &Box{Half: Vec{lx / 2, ly / 2, lz / 2}}
}

// Displacement computes the minimum-image displacement from particle id0 to
// particle id1, out[i] = pos[id1][i] - pos[id0][i], and writes it to out.
//
// The correction is a single wrap per axis: it assumes no particle pair is
// separated by more than 1.5 box lengths. Larger separations silently select
// the wrong image.
func (b *Box) Displacement(pos []Vec, id0, id1 int, out *Vec) {
	for i := 0; i < 3; i++ {
		out[i] = pos[id1][i] - pos[id0][i]
		if out[i] > b.Half[i] {
			out[i] -= 2 * b.Half[i]
		} else if out[i] < -b.Half[i] {
			out[i] += 2 * b.Half[i]
		}
	}
}

// Wrap moves an absolute position into the fundamental domain
// [0, 2*Half[i]) along each axis. Like Displacement, it applies at most one
// correction per axis.
func (b *Box) Wrap(v *Vec) {
	for i := 0; i < 3; i++ {
		if v[i] < 0 {
			v[i] += 2 * b.Half[i]
		} else if v[i] >= 2*b.Half[i] {
			v[i] -= 2 * b.Half[i]
		}
	}
}
