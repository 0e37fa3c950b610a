// Command ftsresponse calculates a spectrometer response function.
//
// Usage:
//
//	ftsresponse <spectrum> <radiance> <output> [<coeffs>]
//
// <spectrum> is the measured standard-lamp line spectrum as a two-column
// ASCII table of (wavenumber, intensity) pairs; '#' and '!' comment lines
// are skipped. <radiance> is the lamp's calibrated spectral radiance as a
// two-column ASCII table of (vacuum wavelength in nm, radiance) pairs sorted
// ascending. The normalized response function is written to <output> as a
// two-column table suitable for ftsintensity.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/cwbudde/algo-fts/fts/response"
)

const defaultCoeffs = 40

var errUsage = errors.New("usage error")

type config struct {
	spectrumFile string
	radianceFile string
	outputFile   string
	ncoeffs      int
}

func parseArgs(args []string) (config, error) {
	if len(args) != 3 && len(args) != 4 {
		return config{}, fmt.Errorf("%w: want 3 or 4 arguments, got %d", errUsage, len(args))
	}
	cfg := config{
		spectrumFile: args[0],
		radianceFile: args[1],
		outputFile:   args[2],
		ncoeffs:      defaultCoeffs,
	}
	if len(args) == 4 {
		n, err := strconv.Atoi(args[3])
		if err != nil {
			return config{}, fmt.Errorf("%w: argument 4 must be a number", errUsage)
		}
		if n < 4 {
			return config{}, fmt.Errorf("%w: the spline fit must contain at least 4 coefficients", errUsage)
		}
		cfg.ncoeffs = n
	}
	return cfg, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ftsresponse <spectrum> <radiance> <output> [<coeffs>]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Calculates a spectrometer response function.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  <spectrum>  standard-lamp line spectrum, two-column ASCII")
	fmt.Fprintln(os.Stderr, "  <radiance>  lamp spectral radiance against wavelength in nm")
	fmt.Fprintln(os.Stderr, "  <output>    destination for the response function table")
	fmt.Fprintf(os.Stderr, "  <coeffs>    number of spline fit coefficients (default %d, minimum 4)\n", defaultCoeffs)
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		usage()
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	fmt.Println("FTS Response Function Generator")
	fmt.Println("--------------------------------------------------------")
	fmt.Printf("Spectrum file : %s\n", cfg.spectrumFile)
	fmt.Printf("Lamp radiance : %s\n", cfg.radianceFile)
	fmt.Printf("Output file   : %s\n", cfg.outputFile)
	fmt.Printf("Spline coeffs : %d\n", cfg.ncoeffs)

	radiance, err := response.LoadSamples(cfg.radianceFile)
	if err != nil {
		return err
	}
	// The radiance is fitted in log space so the spline tracks its dynamic
	// range smoothly.
	for i, y := range radiance.Y {
		radiance.Y[i] = math.Log(y)
	}

	logModel, err := response.Fit(radiance, cfg.ncoeffs)
	if err != nil {
		return fmt.Errorf("fitting %s: %w", cfg.radianceFile, err)
	}
	chiSqPerDof, rsq := logModel.Quality()
	fmt.Printf("chisq/dof = %e, Rsq = %f\n", chiSqPerDof, rsq)

	lamp, err := response.LoadSamples(cfg.spectrumFile)
	if err != nil {
		return err
	}

	result := response.Generate(lamp, logModel)

	out, err := os.Create(cfg.outputFile)
	if err != nil {
		return err
	}
	if err := response.WriteSamples(out, result); err != nil {
		out.Close()
		os.Remove(cfg.outputFile)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(cfg.outputFile)
		return fmt.Errorf("writing %s: %w", cfg.outputFile, err)
	}

	fmt.Printf("Wrote %d data points to %s\n", result.Len(), cfg.outputFile)
	return nil
}
