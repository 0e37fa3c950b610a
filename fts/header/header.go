package header

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required field names for the sampling grid.
const (
	FieldStart   = "wstart" // first wavenumber
	FieldStop    = "wstop"  // last wavenumber
	FieldSpacing = "delw"   // wavenumber spacing between samples
	FieldCount   = "npo"    // number of samples
)

// Fixed column window holding a field's value, matching the producing tool.
const (
	valueStart = 9
	valueEnd   = 32
)

// Errors returned by header parsing.
var (
	ErrFieldMissing = errors.New("header: field not found")
	ErrFieldValue   = errors.New("header: unparseable field value")
)

// Header holds a complete XGremlin header file.
type Header struct {
	raw []byte
}

// Read consumes r fully and returns the header it contains.
func Read(r io.Reader) (*Header, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("header: read: %w", err)
	}
	return &Header{raw: raw}, nil
}

// Load reads the header file at path.
func Load(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Bytes returns the verbatim header contents.
func (h *Header) Bytes() []byte { return h.raw }

// WriteTo copies the header byte-for-byte to w.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.raw)
	return int64(n), err
}

// Field scans the header from the top for the first line whose leading token
// equals name and parses its fixed-column value. No ordering of fields is
// assumed; every lookup rescans from the start.
func (h *Header) Field(name string) (float64, error) {
	sc := bufio.NewScanner(bytes.NewReader(h.raw))
	for sc.Scan() {
		line := sc.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 || tokens[0] != name {
			continue
		}

		end := valueEnd
		if end > len(line) {
			end = len(line)
		}
		if valueStart >= end {
			return 0, fmt.Errorf("%w: %q: line too short", ErrFieldValue, name)
		}
		window := strings.Fields(line[valueStart:end])
		if len(window) == 0 {
			return 0, fmt.Errorf("%w: %q: empty value columns", ErrFieldValue, name)
		}
		v, err := strconv.ParseFloat(window[0], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrFieldValue, name, err)
		}
		return v, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("header: scan: %w", err)
	}
	return 0, fmt.Errorf("%w: %q", ErrFieldMissing, name)
}

// Grid extracts the four required sampling-grid fields. A single missing
// field fails the whole extraction, reporting which field was absent.
func (h *Header) Grid() (Grid, error) {
	var g Grid
	var err error
	if g.Start, err = h.Field(FieldStart); err != nil {
		return Grid{}, err
	}
	if g.Stop, err = h.Field(FieldStop); err != nil {
		return Grid{}, err
	}
	if g.Spacing, err = h.Field(FieldSpacing); err != nil {
		return Grid{}, err
	}
	count, err := h.Field(FieldCount)
	if err != nil {
		return Grid{}, err
	}
	g.Count = int(count)
	return g, nil
}
