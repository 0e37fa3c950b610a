// Command ftsintensity calibrates the absolute intensity of an FTS line
// spectrum against a measured instrument response function.
//
// Usage:
//
//	ftsintensity <spectrum> <response> <output> [<coeffs>]
//
// <spectrum> names an XGremlin line spectrum without the '.dat' extension;
// the matching '.hdr' header must sit next to it. <response> is the
// normalized response function table written by ftsresponse. The calibrated
// spectrum is saved as <output>.dat along with an exact copy of the input
// header as <output>.hdr.
//
// <coeffs> selects the number of spline fit coefficients. A larger value
// reduces smoothing, allowing higher frequencies to be fitted, but can cause
// fit instabilities if too high (default 200, minimum 4).
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-fts/fts/calibrate"
	"github.com/cwbudde/algo-fts/fts/header"
	"github.com/cwbudde/algo-fts/fts/response"
)

const defaultCoeffs = 200

type config struct {
	spectrumBase string
	responseFile string
	outputBase   string
	ncoeffs      int
}

var errUsage = errors.New("usage error")

// parseArgs validates the positional arguments. It performs no file I/O, so
// a bad coefficient count fails before anything is opened.
func parseArgs(args []string) (config, error) {
	if len(args) != 3 && len(args) != 4 {
		return config{}, fmt.Errorf("%w: want 3 or 4 arguments, got %d", errUsage, len(args))
	}
	cfg := config{
		spectrumBase: args[0],
		responseFile: args[1],
		outputBase:   args[2],
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
	fmt.Fprintln(os.Stderr, "Usage: ftsintensity <spectrum> <response> <output> [<coeffs>]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Calibrates the intensity of an FTS line spectrum.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  <spectrum>  XGremlin line spectrum (without the '.dat' extension)")
	fmt.Fprintln(os.Stderr, "  <response>  normalized response function given by ftsresponse")
	fmt.Fprintln(os.Stderr, "  <output>    destination for the calibrated line spectrum")
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
	spectrumDAT := cfg.spectrumBase + ".dat"
	spectrumHDR := cfg.spectrumBase + ".hdr"
	outputDAT := cfg.outputBase + ".dat"
	outputHDR := cfg.outputBase + ".hdr"

	fmt.Println("Calibrate an FTS Line Spectrum")
	fmt.Println("--------------------------------------------------------")
	fmt.Printf("Line spectrum file  : %s\n", spectrumDAT)
	fmt.Printf("Response function   : %s\n", cfg.responseFile)
	fmt.Printf("Output file         : %s\n", outputDAT)
	fmt.Printf("Spline coefficients : %d\n", cfg.ncoeffs)

	hdr, err := header.Load(spectrumHDR)
	if err != nil {
		return err
	}
	grid, err := hdr.Grid()
	if err != nil {
		return fmt.Errorf("loading header data from %s: %w", spectrumHDR, err)
	}
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("%s: %w", spectrumHDR, err)
	}
	fmt.Printf("Header variables    : wstart %g, wstop %g, delw %g, npo %d\n",
		grid.Start, grid.Stop, grid.Spacing, grid.Count)

	samples, err := response.LoadSamples(cfg.responseFile)
	if err != nil {
		return err
	}

	fmt.Print("Constructing spline ... ")
	model, err := response.Fit(samples, cfg.ncoeffs)
	if err != nil {
		fmt.Println()
		return fmt.Errorf("fitting %s: %w", cfg.responseFile, err)
	}
	chiSqPerDof, rsq := model.Quality()
	fmt.Printf("chisq/dof = %e, Rsq = %f\n", chiSqPerDof, rsq)

	stats, err := calibrateFiles(spectrumDAT, outputDAT, grid, model)
	if err != nil {
		return err
	}
	if stats.Zeroed > 0 {
		fmt.Printf("%d samples outside the response domain were zeroed\n", stats.Zeroed)
	}
	if stats.NonFinite > 0 {
		fmt.Printf("warning: %d calibrated samples are non-finite\n", stats.NonFinite)
	}

	out, err := os.Create(outputHDR)
	if err != nil {
		os.Remove(outputDAT)
		return err
	}
	if _, err := hdr.WriteTo(out); err != nil {
		out.Close()
		os.Remove(outputDAT)
		os.Remove(outputHDR)
		return fmt.Errorf("writing %s: %w", outputHDR, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputDAT)
		os.Remove(outputHDR)
		return fmt.Errorf("writing %s: %w", outputHDR, err)
	}

	fmt.Println("done")
	return nil
}

// calibrateFiles runs the calibration between the named files, removing the
// output on any failure so no partial spectrum survives.
func calibrateFiles(srcPath, dstPath string, grid header.Grid, model *response.Model) (calibrate.Stats, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return calibrate.Stats{}, err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return calibrate.Stats{}, err
	}

	fmt.Print("Calibrating spectrum ... ")
	stats, err := calibrate.Run(dst, src, grid, model)
	if err != nil {
		fmt.Println()
		dst.Close()
		os.Remove(dstPath)
		return stats, fmt.Errorf("calibrating %s: %w", srcPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return stats, fmt.Errorf("writing %s: %w", dstPath, err)
	}
	fmt.Println("done")
	return stats, nil
}
