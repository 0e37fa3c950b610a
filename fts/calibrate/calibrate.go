// Package calibrate divides a measured line spectrum by a fitted response
// function, producing an absolute-intensity calibrated spectrum.
package calibrate

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-fts/fts/header"
	"github.com/cwbudde/algo-fts/fts/response"
	"github.com/cwbudde/algo-fts/fts/spectrum"
)

// ErrShortSpectrum reports a spectrum stream that ended before the record
// count announced by its header. A truncated spectrum is corrupt input; it is
// never zero-padded.
var ErrShortSpectrum = errors.New("calibrate: spectrum shorter than header sample count")

// Stats summarizes informational, non-error conditions of one run.
type Stats struct {
	// Zeroed counts output records set to exactly 0.0 because their
	// wavenumber fell outside the fitted response domain.
	Zeroed int

	// NonFinite counts output records that came out Inf or NaN, which
	// happens when the fitted response is zero or tiny at an in-domain
	// wavenumber. Such values propagate per IEEE-754; they are reported,
	// not clipped.
	NonFinite int
}

// Run streams the measured spectrum from src record by record, divides each
// in-domain intensity by the fitted response at its wavenumber, and writes
// exactly grid.Count records to dst in input order. Records outside the
// response domain are written as exactly 0.0.
func Run(dst io.Writer, src io.Reader, grid header.Grid, m *response.Model) (Stats, error) {
	var stats Stats
	if err := grid.Validate(); err != nil {
		return stats, err
	}

	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)
	var rec [spectrum.RecordSize]byte

	for i := 0; i < grid.Count; i++ {
		if _, err := io.ReadFull(br, rec[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return stats, fmt.Errorf("%w: got %d of %d records", ErrShortSpectrum, i, grid.Count)
			}
			return stats, fmt.Errorf("calibrate: read record %d: %w", i, err)
		}
		measured := math.Float32frombits(binary.NativeEndian.Uint32(rec[:]))

		// The estimation standard error is computed alongside the value but
		// is a fit diagnostic only; it does not modify the output.
		out := float32(0)
		if value, _, ok := m.Eval(grid.Wavenumber(i)); ok {
			out = measured / float32(value)
			if math.IsInf(float64(out), 0) || math.IsNaN(float64(out)) {
				stats.NonFinite++
			}
		} else {
			stats.Zeroed++
		}

		binary.NativeEndian.PutUint32(rec[:], math.Float32bits(out))
		if _, err := bw.Write(rec[:]); err != nil {
			return stats, fmt.Errorf("calibrate: write record %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("calibrate: flush: %w", err)
	}
	return stats, nil
}
