package geom

import (
	"math"
	"math/rand"
	"testing"
)

// torsionPositions builds the chain r1-r2-r3-r4 with the central bond along
// z and the torsion angle alpha (degrees), then orders the positions in the
// tuple convention used by the calculators: slots (0, 1, 2, 3) hold
// (r1, r4, r3, r2).
func torsionPositions(alpha float64) []Vec {
	a := alpha / DegreesPerRadian
	r1 := Vec{1, 0, 0}
	r2 := Vec{0, 0, 0}
	r3 := Vec{0, 0, 1}
	r4 := Vec{math.Cos(a), math.Sin(a), 1}
	return []Vec{r1, r4, r3, r2}
}

// The sign convention is LAMMPS-style: with the central bond pointing toward
// the viewer, a counterclockwise rotation of the far outer bond relative to
// the near one is positive. For torsionPositions the result is alpha itself.
func TestDihedralSignConvention(t *testing.T) {
	box := NewBox(100, 100, 100)
	// 0 and 180 are exercised separately: the cosine clamp nudges them by
	// more than this test's tolerance.
	table := []float64{60, 90, 120, 179, -60, -90, -120, -179}

	for i, alpha := range table {
		pos := torsionPositions(alpha)
		theta := box.Dihedral(pos, 0, 1, 2, 3)
		if !almostEq(theta, alpha, 1e-8) {
			t.Errorf("%d) Dihedral at alpha = %g returned %g.",
				i+1, alpha, theta)
		}
		if theta <= -180 || theta > 180 {
			t.Errorf("%d) Dihedral %g outside (-180, 180].", i+1, theta)
		}
	}
}

func TestDihedralPlanar(t *testing.T) {
	box := NewBox(100, 100, 100)

	cis := torsionPositions(0)
	if theta := box.Dihedral(cis, 0, 1, 2, 3); !almostEq(theta, 0, 2e-3) {
		t.Errorf("Cis torsion = %g, expected ~0.", theta)
	}
	trans := torsionPositions(180)
	if theta := box.Dihedral(trans, 0, 1, 2, 3); !almostEq(theta, 180, 2e-3) {
		t.Errorf("Trans torsion = %g, expected ~180.", theta)
	}
	if theta := box.Dihedral(trans, 0, 1, 2, 3); math.IsNaN(theta) {
		t.Errorf("Planar torsion returned NaN.")
	}
}

func randomTorsion(box *Box) []Vec {
	pos := randomPositions(box, 4)
	return pos
}

// nondegenerate reports whether the torsion's plane normals and central bond
// are long enough for derivative denominators to be trustworthy.
func nondegenerate(box *Box, pos []Vec) bool {
	var d03, d23, d12, pb, pc Vec
	box.Displacement(pos, 3, 0, &d03)
	box.Displacement(pos, 3, 2, &d23)
	box.Displacement(pos, 2, 1, &d12)
	d03.Cross(&d23, &pb)
	d12.Cross(&d23, &pc)
	return pb.Norm() > 0.5 && pc.Norm() > 0.5 && d23.Norm() > 0.5
}

// Both the value-only and the value+derivative calculators must agree,
// including the sign of the angle. (They gate the sign on opposite tests of
// an oppositely-signed intermediate; this checks the net conventions really
// are identical.)
func TestDihedralDerivMatchesValue(t *testing.T) {
	box := NewBox(10, 8, 6)
	rand.Seed(31)
	derivs := make([]Vec, 3)

	trials := 0
	for trials < 200 {
		pos := randomTorsion(box)
		if !nondegenerate(box, pos) {
			continue
		}
		trials++

		want := box.Dihedral(pos, 0, 1, 2, 3)
		theta := box.DihedralDeriv(pos, 0, 1, 2, 3, derivs)
		if !almostEq(theta, want, 1e-8) {
			t.Errorf("%d) DihedralDeriv value %g != Dihedral value %g.",
				trials, theta, want)
		}
	}
}

func TestDihedralPeriodicInvariance(t *testing.T) {
	box := NewBox(10, 8, 6)
	rand.Seed(37)

	pos := []Vec{{2, 1, 1}, {1, 2, 2.5}, {1, 1.5, 2}, {1, 1, 1.5}}
	want := box.Dihedral(pos, 0, 1, 2, 3)

	for trial := 0; trial < 100; trial++ {
		shift := Vec{}
		for i := 0; i < 3; i++ {
			shift[i] = (rand.Float64() - 0.5) * 2 * box.Half[i]
		}

		shifted := make([]Vec, len(pos))
		for p := range pos {
			for i := 0; i < 3; i++ {
				shifted[p][i] = pos[p][i] + shift[i]
			}
			box.Wrap(&shifted[p])
		}

		theta := box.Dihedral(shifted, 0, 1, 2, 3)
		if !almostEq(theta, want, 1e-8) {
			t.Errorf("%d) Dihedral = %g after shift %v, expected %g.",
				trial+1, theta, shift, want)
		}
	}
}

// The derivative slots are the gradient of the signed angle, in radians, with
// respect to particles i0, i1 and i2. The i3 derivative is the negated sum.
func TestDihedralDerivFiniteDifference(t *testing.T) {
	box := NewBox(10, 8, 6)
	rand.Seed(41)
	derivs := make([]Vec, 3)
	h := 1e-6

	trials := 0
	for trials < 50 {
		pos := randomTorsion(box)
		if !nondegenerate(box, pos) {
			continue
		}
		theta := box.DihedralDeriv(pos, 0, 1, 2, 3, derivs)
		// Stay away from the branch cut at +-180 and the planar points.
		if math.Abs(theta) > 170 || math.Abs(theta) < 5 {
			continue
		}
		trials++

		// Implicit derivative for the remaining particle.
		i3Deriv := Vec{}
		for i := 0; i < 3; i++ {
			i3Deriv[i] = -(derivs[0][i] + derivs[1][i] + derivs[2][i])
		}

		for p := 0; p < 4; p++ {
			want := i3Deriv
			if p < 3 {
				want = derivs[p]
			}
			for c := 0; c < 3; c++ {
				orig := pos[p][c]
				pos[p][c] = orig + h
				plus := box.Dihedral(pos, 0, 1, 2, 3) / DegreesPerRadian
				pos[p][c] = orig - h
				minus := box.Dihedral(pos, 0, 1, 2, 3) / DegreesPerRadian
				pos[p][c] = orig

				fd := (plus - minus) / (2 * h)
				if !almostEq(fd, want[c], 1e-4) {
					t.Errorf("%d) deriv[%d][%d]: finite difference %g, "+
						"analytic %g.", trials, p, c, fd, want[c])
				}
			}
		}
	}
}

func BenchmarkDihedralDeriv(b *testing.B) {
	box := NewBox(10, 10, 10)
	pos := []Vec{{2, 1, 1}, {1, 2, 2.5}, {1, 1.5, 2}, {1, 1, 1.5}}
	derivs := make([]Vec, 3)
	for i := 0; i < b.N; i++ {
		box.DihedralDeriv(pos, 0, 1, 2, 3, derivs)
	}
}
