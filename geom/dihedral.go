package geom

import (
	"math"
)

// dihedralPlanes computes the three bond displacements of the torsion
// defined by ids (i0, i1, i2, i3) along with the plane normals
// pb = d03 x d23 and pc = d12 x d23. The chain runs i0-i3-i2-i1 with the
// central bond between i3 and i2.
func (b *Box) dihedralPlanes(
	pos []Vec, i0, i1, i2, i3 int,
	d03, d23, d12, pb, pc *Vec,
) {
	b.Displacement(pos, i3, i0, d03)
	b.Displacement(pos, i3, i2, d23)
	b.Displacement(pos, i2, i1, d12)
	d03.Cross(d23, pb)
	d12.Cross(d23, pc)
}

// Dihedral computes the torsion angle, in degrees, about the central bond of
// the chain i0-i3-i2-i1, using the LAMMPS sign convention: the result lies
// in (-180, 180], with the sign taken from the scalar triple product of the
// three bond vectors. Collinear chains are not guarded against and yield NaN.
func (b *Box) Dihedral(pos []Vec, i0, i1, i2, i3 int) float64 {
	var d03, d23, d12, pb, pc Vec
	b.dihedralPlanes(pos, i0, i1, i2, i3, &d03, &d23, &d12, &pb, &pc)

	rpb1 := 1 / pb.Norm()
	rpc1 := 1 / pc.Norm()
	cosTheta := clampCos(pb.Dot(&pc) * rpb1 * rpc1)
	theta := math.Acos(cosTheta) * DegreesPerRadian

	// Only the sign of s matters.
	s := pb.Dot(&d12) * rpb1 / d23.Norm()
	if s > 0 {
		return -theta
	}
	return theta
}

// DihedralDeriv computes the torsion angle, in degrees, about the central
// bond of the chain i0-i3-i2-i1, together with its derivatives, in radians
// per length, with respect to particles i0, i1 and i2, written to derivs[0],
// derivs[1] and derivs[2]. The derivative with respect to i3 is the negated
// sum of the other three and is not stored. There is no cutoff gating.
func (b *Box) DihedralDeriv(
	pos []Vec, i0, i1, i2, i3 int, derivs []Vec,
) float64 {
	var d03, d23, d12, pb, pc Vec
	b.dihedralPlanes(pos, i0, i1, i2, i3, &d03, &d23, &d12, &pb, &pc)

	r232 := d23.Dot(&d23)
	rrbc := 1 / math.Sqrt(r232)
	pb2 := pb.Dot(&pb)
	rpb1 := 1 / math.Sqrt(pb2)
	pc2 := pc.Dot(&pc)
	rpc1 := 1 / math.Sqrt(pc2)

	cosTheta := clampCos(pb.Dot(&pc) * rpb1 * rpc1)
	theta := math.Acos(cosTheta)

	paramVal := theta * DegreesPerRadian
	if s := -pb.Dot(&d12) * rpb1 * rrbc; s < 0 {
		paramVal = -paramVal
	}

	fcoef := d03.Dot(&d23) / r232
	hcoef := 1 + d12.Dot(&d23)/r232
	for i := 0; i < 3; i++ {
		dtf := pb[i] / (rrbc * pb2)
		dth := -pc[i] / (rrbc * pc2)
		derivs[0][i] = dtf
		derivs[1][i] = dth
		derivs[2][i] = -dtf*fcoef - dth*hcoef
	}
	return paramVal
}
