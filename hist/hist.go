/*package hist accumulates fixed-range histograms of coordinate
distributions, with linear or logarithmic binning. */
package hist

import (
	"math"
	"strings"
)

// Info describes the binning of a histogram. Scale is "lin" or "log"
// (case-insensitive); anything other than "log" means linear.
type Info struct {
	Min, Max float64
	Bins     int
	Scale    string
}

// Hist is a histogram accumulator. Samples outside [Min, Max) are dropped,
// not clamped.
type Hist struct {
	Info
	Centers []float64
	Counts  []int
}

// New creates an empty histogram with the given binning.
func New(info *Info) *Hist {
	h := &Hist{
		Info:    *info,
		Centers: make([]float64, info.Bins),
		Counts:  make([]int, info.Bins),
	}

	min, max := info.Min, info.Max
	if h.log() {
		min, max = math.Log10(min), math.Log10(max)
	}
	dx := (max - min) / float64(info.Bins)
	for i := range h.Centers {
		h.Centers[i] = min + dx*(float64(i)+0.5)
		if h.log() {
			h.Centers[i] = math.Pow(10, h.Centers[i])
		}
	}
	return h
}

func (h *Hist) log() bool {
	return strings.ToLower(h.Scale) == "log"
}

// Add accumulates every value in xs into the histogram and reports the
// number of values that fell inside the range.
func (h *Hist) Add(xs []float64) int {
	min, max := h.Min, h.Max
	if h.log() {
		min, max = math.Log10(min), math.Log10(max)
	}
	dx := (max - min) / float64(h.Bins)

	kept := 0
	for _, x := range xs {
		if h.log() {
			if x <= 0 {
				continue
			}
			x = math.Log10(x)
		}
		idx := (x - min) / dx
		// A degenerate range (log scale with Min <= 0) gives NaN indices,
		// which must not reach Counts.
		if !(idx >= 0 && idx < float64(h.Bins)) {
			continue
		}
		h.Counts[int(idx)]++
		kept++
	}
	return kept
}

// Total returns the number of accumulated samples.
func (h *Hist) Total() int {
	sum := 0
	for _, c := range h.Counts {
		sum += c
	}
	return sum
}
