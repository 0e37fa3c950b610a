package synth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is one record of a SYN-format line list.
type Line struct {
	Label   string  // level configuration label, may be empty
	Center  float64 // line center wavenumber in cm⁻¹
	Width   float64 // full width at half maximum in mK (10⁻³ cm⁻¹)
	Peak    float64 // peak intensity
	Damping float64 // Lorentzian fraction of the profile, 0..1
}

// ErrBadLineRecord reports a line-list record that does not end in the four
// numeric columns center, width, peak, damping.
var ErrBadLineRecord = errors.New("synth: malformed line record")

// ParseLineList reads SYN-format records: an optional label followed by the
// numeric columns center, width, peak, damping. Blank lines are tolerated.
func ParseLineList(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: line %d: want 4 numeric columns", ErrBadLineRecord, lineNo)
		}

		num := fields[len(fields)-4:]
		var vals [4]float64
		for i, tok := range num {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadLineRecord, lineNo, err)
			}
			vals[i] = v
		}

		lines = append(lines, Line{
			Label:   strings.Join(fields[:len(fields)-4], " "),
			Center:  vals[0],
			Width:   vals[1],
			Peak:    vals[2],
			Damping: vals[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("synth: read: %w", err)
	}
	return lines, nil
}
