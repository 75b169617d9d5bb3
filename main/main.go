package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/mdkit/cggeom/dists"
	"github.com/mdkit/cggeom/geom"
	"github.com/mdkit/cggeom/hist"
	"github.com/mdkit/cggeom/io"
)

func main() {
	var (
		distsFile     string
		exampleConfig bool
	)

	flag.StringVar(
		&distsFile, "Dists", "",
		"Configuration file for [Dists] mode.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example [Dists] configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Println(io.ExampleDistsFile)
	case distsFile != "":
		wrap := io.DefaultDistsWrapper()
		err := gcfg.ReadFileInto(wrap, distsFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Dists

		if !con.ValidSnapshot() {
			log.Fatal("Invalid/non-existent 'Snapshot' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidTuples() {
			log.Fatal("Invalid/non-existent 'Tuples' value.")
		} else if !con.ValidQuantity() {
			log.Fatal("'Quantity' must be Bond, Angle, or Dihedral.")
		} else if !con.ValidBox() {
			log.Fatal("'BoxX', 'BoxY', 'BoxZ' must all be positive.")
		} else if !con.ValidRange() {
			log.Fatal("Invalid 'Min'/'Max'/'Bins' values.")
		}

		distsMain(con)
	default:
		log.Fatal("Must select a mode, -Dists or -ExampleConfig.")
	}
}

func distsMain(con *io.DistsConfig) {
	pos, err := io.ReadSnapshot(con.Snapshot)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d particles from %s", len(pos), con.Snapshot)

	box := geom.NewBox(con.BoxX, con.BoxY, con.BoxZ)
	calc := dists.NewCalc(box, pos, con.Workers)

	var vals []float64
	switch strings.ToLower(con.Quantity) {
	case "bond":
		pairs, err := io.ReadPairs(con.Tuples, len(pos))
		if err != nil {
			log.Fatal(err.Error())
		}
		vals = calc.Bonds(pairs)
	case "angle":
		triples, err := io.ReadTriples(con.Tuples, len(pos))
		if err != nil {
			log.Fatal(err.Error())
		}
		vals = calc.Angles(triples)
	case "dihedral":
		quads, err := io.ReadQuads(con.Tuples, len(pos))
		if err != nil {
			log.Fatal(err.Error())
		}
		vals = calc.Dihedrals(quads)
	}
	log.Printf("Evaluated %d %s coordinates", len(vals), con.Quantity)

	h := hist.New(&hist.Info{
		Min: con.Min, Max: con.Max, Bins: con.Bins, Scale: con.Scale,
	})
	kept := h.Add(vals)
	if kept < len(vals) {
		log.Printf("%d of %d values fell outside [%g, %g)",
			len(vals)-kept, len(vals), con.Min, con.Max)
	}

	if err := io.WriteDist(con.Output, h); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s", con.Output)
}
