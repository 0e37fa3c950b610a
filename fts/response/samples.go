package response

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Errors returned when loading and fitting samples.
var (
	ErrNoSamples           = errors.New("response: no samples")
	ErrInsufficientSamples = errors.New("response: need more samples than fit coefficients")
)

// Samples holds response-function sample points in file order. The fitter
// takes the domain bounds from the first and last entry, so callers must
// supply data already sorted ascending by X; sortedness is a precondition,
// not enforced here.
type Samples struct {
	X []float64
	Y []float64
}

// Len returns the number of sample points.
func (s Samples) Len() int { return len(s.X) }

// Domain returns the first and last sampled x.
func (s Samples) Domain() (xmin, xmax float64) {
	return s.X[0], s.X[len(s.X)-1]
}

// ReadSamples parses a two-column ASCII table: one x y pair of
// whitespace-separated floating-point tokens per line. Blank lines and lines
// starting with '#' or '!' are skipped.
func ReadSamples(r io.Reader) (Samples, error) {
	var s Samples
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			return Samples{}, fmt.Errorf("response: line %d: want two columns, got %d", lineNo, len(tokens))
		}
		x, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return Samples{}, fmt.Errorf("response: line %d: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return Samples{}, fmt.Errorf("response: line %d: %w", lineNo, err)
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	if err := sc.Err(); err != nil {
		return Samples{}, fmt.Errorf("response: read: %w", err)
	}
	if s.Len() == 0 {
		return Samples{}, ErrNoSamples
	}
	return s, nil
}

// LoadSamples reads the two-column table at path.
func LoadSamples(path string) (Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return Samples{}, fmt.Errorf("response: %w", err)
	}
	defer f.Close()
	return ReadSamples(f)
}

// WriteSamples emits the two-column table form read by ReadSamples.
func WriteSamples(w io.Writer, s Samples) error {
	bw := bufio.NewWriter(w)
	for i := range s.X {
		if _, err := fmt.Fprintf(bw, "%g %g\n", s.X[i], s.Y[i]); err != nil {
			return fmt.Errorf("response: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("response: write: %w", err)
	}
	return nil
}
