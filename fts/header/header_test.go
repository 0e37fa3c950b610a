package header

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// headerLine builds one declaration with the value in the fixed column
// window, optionally followed by trailing text beyond it.
func headerLine(name, value, trailing string) string {
	return fmt.Sprintf("%-9s%-23s%s", name, value, trailing)
}

func testHeaderText() string {
	return strings.Join([]string{
		"id        test spectrum",
		headerLine("npo", "101", "number of points"),
		headerLine("delw", "0.01", "/* step */"),
		headerLine("wstop", "101.0", ""),
		headerLine("wstart", "100.0", "cm-1"),
	}, "\n") + "\n"
}

func TestFieldFixedColumns(t *testing.T) {
	h, err := Read(strings.NewReader(testHeaderText()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	for _, tc := range []struct {
		name string
		want float64
	}{
		{FieldStart, 100.0},
		{FieldStop, 101.0},
		{FieldSpacing, 0.01},
		{FieldCount, 101},
	} {
		got, err := h.Field(tc.name)
		if err != nil {
			t.Fatalf("Field(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("Field(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFieldRescansFromStart(t *testing.T) {
	h, err := Read(strings.NewReader(testHeaderText()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// wstart sits below npo in the file; repeated lookups in any order must
	// both succeed.
	if _, err := h.Field(FieldStart); err != nil {
		t.Fatalf("Field(wstart): %v", err)
	}
	if _, err := h.Field(FieldCount); err != nil {
		t.Fatalf("Field(npo) after wstart: %v", err)
	}
	if _, err := h.Field(FieldStart); err != nil {
		t.Fatalf("Field(wstart) second lookup: %v", err)
	}
}

func TestFieldMissing(t *testing.T) {
	h, err := Read(strings.NewReader(testHeaderText()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	_, err = h.Field("resolution")
	if !errors.Is(err, ErrFieldMissing) {
		t.Fatalf("err = %v, want ErrFieldMissing", err)
	}
	if !strings.Contains(err.Error(), "resolution") {
		t.Fatalf("error %q does not name the missing field", err)
	}
}

func TestGridExtraction(t *testing.T) {
	h, err := Read(strings.NewReader(testHeaderText()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	g, err := h.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	want := Grid{Start: 100.0, Stop: 101.0, Spacing: 0.01, Count: 101}
	if g != want {
		t.Fatalf("Grid = %+v, want %+v", g, want)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestGridMissingFieldAborts(t *testing.T) {
	text := strings.Join([]string{
		headerLine("wstart", "100.0", ""),
		headerLine("wstop", "101.0", ""),
		headerLine("npo", "101", ""),
	}, "\n")
	h, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	_, err = h.Grid()
	if !errors.Is(err, ErrFieldMissing) {
		t.Fatalf("err = %v, want ErrFieldMissing", err)
	}
	if !strings.Contains(err.Error(), FieldSpacing) {
		t.Fatalf("error %q does not name the missing field", err)
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	text := testHeaderText()
	h, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var buf bytes.Buffer
	if _, err := h.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != text {
		t.Fatalf("WriteTo output differs from input:\n%q\n%q", buf.String(), text)
	}
}

func TestFormatParsesBack(t *testing.T) {
	want := Grid{Start: 4500.25, Stop: 4600.25, Spacing: 0.025, Count: 4001}
	h, err := Read(bytes.NewReader(Format(want)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, err := h.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if got != want {
		t.Fatalf("Grid = %+v, want %+v", got, want)
	}
}

func TestGridValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		g    Grid
	}{
		{"zero spacing", Grid{Start: 0, Stop: 1, Spacing: 0, Count: 2}},
		{"negative spacing", Grid{Start: 0, Stop: 1, Spacing: -1, Count: 2}},
		{"zero count", Grid{Start: 0, Stop: 1, Spacing: 1, Count: 0}},
		{"inconsistent stop", Grid{Start: 0, Stop: 5, Spacing: 1, Count: 2}},
	} {
		if err := tc.g.Validate(); !errors.Is(err, ErrInvalidGrid) {
			t.Fatalf("%s: err = %v, want ErrInvalidGrid", tc.name, err)
		}
	}
}

func TestWavenumber(t *testing.T) {
	g := Grid{Start: 100, Stop: 101, Spacing: 0.01, Count: 101}
	if got := g.Wavenumber(0); got != 100 {
		t.Fatalf("Wavenumber(0) = %v, want 100", got)
	}
	if got := g.Wavenumber(100); got != 101 {
		t.Fatalf("Wavenumber(100) = %v, want 101", got)
	}
}
