package header

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid reports an inconsistent sampling grid.
var ErrInvalidGrid = errors.New("header: invalid sampling grid")

// Grid describes the uniform wavenumber sampling of a spectrum. It is built
// once from a header and never modified.
type Grid struct {
	Start   float64 // wavenumber of sample 0
	Stop    float64 // wavenumber of the last sample
	Spacing float64 // wavenumber step between samples
	Count   int     // number of samples
}

// Wavenumber returns the wavenumber of sample i.
func (g Grid) Wavenumber(i int) float64 {
	return g.Start + float64(i)*g.Spacing
}

// Validate checks the grid invariants: positive spacing and count, and a stop
// wavenumber consistent with start + spacing*(count-1) to within half a step.
func (g Grid) Validate() error {
	if g.Spacing <= 0 {
		return fmt.Errorf("%w: spacing %g", ErrInvalidGrid, g.Spacing)
	}
	if g.Count <= 0 {
		return fmt.Errorf("%w: sample count %d", ErrInvalidGrid, g.Count)
	}
	end := g.Wavenumber(g.Count - 1)
	if math.Abs(end-g.Stop) > g.Spacing/2 {
		return fmt.Errorf("%w: stop %g, but start + spacing*(count-1) = %g",
			ErrInvalidGrid, g.Stop, end)
	}
	return nil
}

// Format renders g as a minimal header file. Each value sits in the fixed
// column window, so headers produced here parse back through Field.
func Format(g Grid) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-9s%-23.12g\n", FieldStart, g.Start)
	fmt.Fprintf(&buf, "%-9s%-23.12g\n", FieldStop, g.Stop)
	fmt.Fprintf(&buf, "%-9s%-23.12g\n", FieldSpacing, g.Spacing)
	fmt.Fprintf(&buf, "%-9s%-23d\n", FieldCount, g.Count)
	return buf.Bytes()
}
