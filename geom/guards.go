package geom

import (
	"math"
)

// DegreesPerRadian converts the radian output of the trig inverses into the
// degree convention used by force-field parameter files.
const DegreesPerRadian = 180.0 / math.Pi

// epsilon is the process-wide tolerance used to keep trig arguments away
// from the domain boundaries of acos and divisions by sin away from zero.
const epsilon = 1e-10

// clampCos pulls a cosine that floating-point rounding has pushed past +-1
// back into the open interval (-1, 1) so acos never returns NaN.
func clampCos(c float64) float64 {
	if c > 1-epsilon {
		return 1 - epsilon
	} else if c < -1+epsilon {
		return -1 + epsilon
	}
	return c
}

// clampSine pushes a near-zero sine away from zero, preserving its sign, so
// it can be used as a denominator.
func clampSine(s float64) float64 {
	if s < 0 && s > -epsilon {
		return -epsilon
	} else if s > 0 && s < epsilon {
		return epsilon
	}
	return s
}
