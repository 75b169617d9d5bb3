package main

import (
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s dist_file out_png", os.Args[0])
	}
	distFile, outFile := os.Args[1], os.Args[2]

	cols, err := table.ReadTable(distFile, []int{0, 1}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	centers, counts := cols[0], cols[1]

	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		log.Fatalf("%s holds an empty distribution.", distFile)
	}

	// Normalize to a probability density. Bin widths come from the
	// midpoints between neighboring centers, so log-binned distributions
	// normalize correctly too.
	density := make([]float64, len(counts))
	for i := range counts {
		width := 1.0
		switch {
		case len(centers) < 2:
		case i == 0:
			width = centers[1] - centers[0]
		case i == len(centers)-1:
			width = centers[i] - centers[i-1]
		default:
			width = (centers[i+1] - centers[i-1]) / 2
		}
		density[i] = counts[i] / (total * width)
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(centers, density, "k", plt.LW(2))
	plt.XLabel("coordinate", plt.FontSize(16))
	plt.YLabel("probability density", plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()
}
