// Package spectrum reads and writes binary spectrum (.dat) files.
//
// A spectrum file is a headerless sequence of native-endian 32-bit float
// intensity records; sample i of the file corresponds to wavenumber
// start + i*spacing of its companion header. The package also provides the
// elementwise arithmetic used to combine equally sized spectra.
package spectrum
