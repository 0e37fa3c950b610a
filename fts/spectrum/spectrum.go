package spectrum

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// RecordSize is the byte size of one intensity record.
const RecordSize = 4

// ErrTruncated reports a spectrum file whose byte length is not a whole
// number of records, or that ended before the expected record count.
var ErrTruncated = errors.New("spectrum: truncated record stream")

// ReadAll reads intensity records from r until EOF.
func ReadAll(r io.Reader) ([]float32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("spectrum: read: %w", err)
	}
	if len(raw)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(raw)%RecordSize)
	}
	out := make([]float32, len(raw)/RecordSize)
	for i := range out {
		out[i] = math.Float32frombits(binary.NativeEndian.Uint32(raw[i*RecordSize:]))
	}
	return out, nil
}

// ReadCount reads exactly n intensity records from r. A short stream is a
// hard error, never padded.
func ReadCount(r io.Reader, n int) ([]float32, error) {
	raw := make([]byte, n*RecordSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: want %d records: %v", ErrTruncated, n, err)
		}
		return nil, fmt.Errorf("spectrum: read: %w", err)
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.NativeEndian.Uint32(raw[i*RecordSize:]))
	}
	return out, nil
}

// Write writes every record to w in file order.
func Write(w io.Writer, data []float32) error {
	raw := make([]byte, len(data)*RecordSize)
	for i, v := range data {
		binary.NativeEndian.PutUint32(raw[i*RecordSize:], math.Float32bits(v))
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("spectrum: write: %w", err)
	}
	return nil
}

// Widen converts records to float64 working values.
func Widen(data []float32) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// Narrow converts float64 working values back to records.
func Narrow(data []float64) []float32 {
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v)
	}
	return out
}
