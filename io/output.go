package io

import (
	"fmt"
	"os"

	"github.com/mdkit/cggeom/hist"
)

// WriteDist writes a histogram as two whitespace-separated columns, bin
// center and count, with a # comment header.
func WriteDist(file string, h *hist.Hist) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "# center count (%d samples)\n", h.Total())
	if err != nil {
		return err
	}
	for i := range h.Centers {
		_, err = fmt.Fprintf(f, "%g %d\n", h.Centers[i], h.Counts[i])
		if err != nil {
			return err
		}
	}
	return nil
}
