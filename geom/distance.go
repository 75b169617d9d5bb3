package geom

import (
	"math"
)

// SquaredDistance computes the squared minimum-image distance between
// particles id0 and id1.
func (b *Box) SquaredDistance(pos []Vec, id0, id1 int) float64 {
	d := Vec{}
	b.Displacement(pos, id0, id1, &d)
	return d.Dot(&d)
}

// Distance computes the minimum-image distance between particles id0 and id1.
func (b *Box) Distance(pos []Vec, id0, id1 int) float64 {
	return math.Sqrt(b.SquaredDistance(pos, id0, id1))
}

// SquaredDistanceDeriv computes the squared minimum-image distance between
// particles id0 and id1 together with its derivative with respect to id1's
// position, which is written to derivs[0]. The derivative with respect to
// id0 is its negation and is not stored.
//
// The squared distance is always returned. If it exceeds cutoff2 the second
// return value is false and derivs is left untouched. A squared distance
// exactly equal to cutoff2 counts as within the cutoff.
func (b *Box) SquaredDistanceDeriv(
	pos []Vec, id0, id1 int, cutoff2 float64, derivs []Vec,
) (float64, bool) {
	d := Vec{}
	b.Displacement(pos, id0, id1, &d)
	rr2 := d.Dot(&d)
	if rr2 > cutoff2 {
		return rr2, false
	}
	for i := 0; i < 3; i++ {
		derivs[0][i] = 2 * d[i]
	}
	return rr2, true
}

// DistanceDeriv computes the minimum-image distance between particles id0
// and id1 together with its derivative with respect to id1's position, which
// is written to derivs[0]. Gating is identical to SquaredDistanceDeriv, but
// the returned value is only meaningful when the bool is true.
func (b *Box) DistanceDeriv(
	pos []Vec, id0, id1 int, cutoff2 float64, derivs []Vec,
) (float64, bool) {
	rr2, ok := b.SquaredDistanceDeriv(pos, id0, id1, cutoff2, derivs)
	if !ok {
		return rr2, false
	}
	rr := math.Sqrt(rr2)
	for i := 0; i < 3; i++ {
		derivs[0][i] = 0.5 * derivs[0][i] / rr
	}
	return rr, true
}
