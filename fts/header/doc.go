// Package header reads XGremlin spectrum header (.hdr) files.
//
// An XGremlin header is a text file with one declaration per line: the first
// whitespace-delimited token names the field and the value occupies a fixed
// column window (bytes 9 to 31) behind it. That column layout is a byte-format
// compatibility constraint with the producing tool and is preserved exactly
// here, isolated behind this package so alternate header formats can be added
// without touching the fitting or calibration code.
//
// The raw header bytes are retained so a calibrated spectrum can carry an
// exact byte-for-byte copy of its source header.
package header
