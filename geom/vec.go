/*package geom computes translation-invariant internal coordinates (distances,
angles, dihedrals) and their first derivatives for particles in a periodic
orthorhombic box.

All routines are pure functions of their inputs. Position arrays and
derivative buffers are owned by the caller: the package never allocates
long-lived memory and never retains references across calls. Calculators with
a cutoff report a bool instead of an error; when it is false the outputs must
not be trusted. Degenerate geometry (zero-length bonds, collinear triples) is
not guarded against and propagates NaN.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Dot computes the dot product of two vectors.
func (v1 *Vec) Dot(v2 *Vec) float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		sum += v1[i] * v2[i]
	}
	return sum
}

// Cross computes the cross product of two vectors and writes it to out.
// out must not alias v1 or v2.
func (v1 *Vec) Cross(v2, out *Vec) {
	out[0] = v1[1]*v2[2] - v1[2]*v2[1]
	out[1] = v1[2]*v2[0] - v1[0]*v2[2]
	out[2] = v1[0]*v2[1] - v1[1]*v2[0]
}

// Norm computes the norm of a vector.
func (v *Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}
