package geom

import (
	"math"
)

// Angle computes the angle, in degrees, at vertex particle apex formed by
// the rays toward particles end0 and end1.
func (b *Box) Angle(pos []Vec, end0, end1, apex int) float64 {
	u, v := Vec{}, Vec{}
	b.Displacement(pos, apex, end0, &u)
	b.Displacement(pos, apex, end1, &v)
	c := clampCos(u.Dot(&v) / (u.Norm() * v.Norm()))
	return math.Acos(c) * DegreesPerRadian
}

// AngleDeriv computes the angle, in degrees, at vertex particle apex formed
// by the rays toward particles end0 and end1, together with its derivatives
// with respect to the two endpoint particles, written to derivs[0] and
// derivs[1]. The derivative vectors follow the force-matching convention:
// derivs[k] is the negated gradient of the angle, in radians per length,
// with respect to endpoint k. The vertex derivative is not stored; the
// caller recovers it as the negated sum of the endpoint derivatives.
//
// Both vertex-endpoint legs must have squared length within cutoff2,
// otherwise the bool is false and no output is produced.
func (b *Box) AngleDeriv(
	pos []Vec, end0, end1, apex int, cutoff2 float64, derivs []Vec,
) (float64, bool) {
	inter := AngleInter{}
	return b.AngleWithInter(pos, end0, end1, apex, cutoff2, derivs, &inter)
}

// AngleInter holds the per-leg intermediates of an angle evaluation:
// DistDeriv0 and DistDeriv1 are the squared-distance derivative vectors of
// the apex-end0 and apex-end1 legs (twice the minimum-image displacement),
// R0 and R1 the corresponding bond lengths. Higher-order terms that couple
// bonds to angles reuse these instead of recomputing the legs.
type AngleInter struct {
	DistDeriv0, DistDeriv1 Vec
	R0, R1                 float64
}

// AngleWithInter is AngleDeriv with a wider output contract: the leg
// intermediates are written to inter for reuse by the caller.
func (b *Box) AngleWithInter(
	pos []Vec, end0, end1, apex int, cutoff2 float64,
	derivs []Vec, inter *AngleInter,
) (float64, bool) {
	var leg0, leg1 [1]Vec
	rr20, ok0 := b.SquaredDistanceDeriv(pos, apex, end0, cutoff2, leg0[:])
	rr21, ok1 := b.SquaredDistanceDeriv(pos, apex, end1, cutoff2, leg1[:])
	if !ok0 || !ok1 {
		return 0, false
	}
	inter.DistDeriv0, inter.DistDeriv1 = leg0[0], leg1[0]

	// The leg vectors here are twice the raw displacements, hence the 4 in
	// the cosine's denominator.
	d0, d1 := &inter.DistDeriv0, &inter.DistDeriv1
	inter.R0, inter.R1 = math.Sqrt(rr20), math.Sqrt(rr21)
	r0, r1 := inter.R0, inter.R1
	cosTheta := clampCos(d0.Dot(d1) / (4 * r0 * r1))
	theta := math.Acos(cosTheta)

	sinTheta := clampSine(math.Sin(theta))
	rr011 := 1 / (r0 * r1 * sinTheta)
	rr00c := cosTheta / (r0 * r0 * sinTheta)
	rr11c := cosTheta / (r1 * r1 * sinTheta)
	for i := 0; i < 3; i++ {
		derivs[0][i] = 0.5 * (d1[i]*rr011 - rr00c*d0[i])
		derivs[1][i] = 0.5 * (d0[i]*rr011 - rr11c*d1[i])
	}
	return theta * DegreesPerRadian, true
}
