package io

import (
	"strings"
)

const (
	ExampleDistsFile = `[Dists]

#######################
# Required Parameters #
#######################

# Text snapshot with one "x y z" row per particle, in box coordinates.
Snapshot = path/to/snapshot.dat

# File the distribution will be written to.
Output = path/to/output.dist

# Tuple list: one row of particle indices per coordinate. Two columns for
# Bond, three for Angle (the third index is the vertex), four for Dihedral.
Tuples = path/to/tuples.dat

# Which internal coordinate to histogram. One of Bond, Angle, Dihedral.
Quantity = Angle

# Full side lengths of the periodic box.
BoxX = 10.0
BoxY = 10.0
BoxZ = 10.0

#######################
# Optional Parameters #
#######################

# Histogram range and bin count. Angle defaults to [0, 180) over 180 bins,
# Dihedral to [-180, 180) over 360 bins. Bond has no default range and must
# set all three.
# Min = 0.0
# Max = 180.0
# Bins = 180

# Bin spacing, Lin or Log. Default is Lin.
# Scale = Lin

# Number of worker threads. Defaults to the number of cores.
# Workers = 8`
)

type DistsConfig struct {
	// Required
	Snapshot string
	Output   string
	Tuples   string
	Quantity string
	BoxX     float64
	BoxY     float64
	BoxZ     float64

	// Optional
	Min     float64
	Max     float64
	Bins    int
	Scale   string
	Workers int
}

type DistsWrapper struct {
	Dists DistsConfig
}

func DefaultDistsWrapper() *DistsWrapper {
	return &DistsWrapper{DistsConfig{Scale: "Lin"}}
}

func (con *DistsConfig) ValidSnapshot() bool { return con.Snapshot != "" }
func (con *DistsConfig) ValidOutput() bool   { return con.Output != "" }
func (con *DistsConfig) ValidTuples() bool   { return con.Tuples != "" }

func (con *DistsConfig) ValidQuantity() bool {
	switch strings.ToLower(con.Quantity) {
	case "bond", "angle", "dihedral":
		return true
	}
	return false
}

func (con *DistsConfig) ValidBox() bool {
	return con.BoxX > 0 && con.BoxY > 0 && con.BoxZ > 0
}

// ValidRange checks the histogram controls after defaults have been applied:
// angle-valued quantities fall back to their natural degree ranges, bonds
// must be fully specified. Log binning additionally needs a positive Min.
func (con *DistsConfig) ValidRange() bool {
	if con.Min == 0 && con.Max == 0 {
		switch strings.ToLower(con.Quantity) {
		case "angle":
			con.Min, con.Max = 0, 180
			if con.Bins == 0 {
				con.Bins = 180
			}
		case "dihedral":
			con.Min, con.Max = -180, 180
			if con.Bins == 0 {
				con.Bins = 360
			}
		default:
			return false
		}
	}
	if strings.ToLower(con.Scale) == "log" && con.Min <= 0 {
		return false
	}
	return con.Max > con.Min && con.Bins > 0
}
