// Command nicholsinfo prints the Nichols-form frequency response of a
// cascade of linear systems.
//
// Usage:
//
//	nicholsinfo [flags]
//
// A single transfer function can be given with -num and -den; larger
// cascades are described in a YAML file passed with -config. Flags that are
// set explicitly override values from the file.
//
// Examples:
//
//	nicholsinfo -num 1 -den 1,1
//	nicholsinfo -num 10 -den 1,2,10 -gain 6 -unwrap
//	nicholsinfo -config loop.yaml -points 100
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-nichols/control/freqresp"
)

func main() {
	configPath := flag.String("config", "", "YAML file describing the cascade")
	num := flag.String("num", "", "numerator coefficients, descending powers of s (e.g. \"1\")")
	den := flag.String("den", "", "denominator coefficients, descending powers of s (e.g. \"1,1\")")
	wmin := flag.Float64("wmin", 0.01, "lowest frequency in rad/s")
	wmax := flag.Float64("wmax", 100, "highest frequency in rad/s")
	points := flag.Int("points", 25, "number of logarithmically spaced frequencies")
	gain := flag.Float64("gain", 0, "gain in dB cascaded after all stages")
	unwrap := flag.Bool("unwrap", false, "unwrap and gauge-fix the phase of the result")
	verbose := flag.Bool("v", false, "log debug diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nicholsinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints phase (deg), magnitude (dB) and H(jw) of a cascade of systems.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nicholsinfo -num 1 -den 1,1\n")
		fmt.Fprintf(os.Stderr, "  nicholsinfo -num 10 -den 1,2,10 -gain 6 -unwrap\n")
		fmt.Fprintf(os.Stderr, "  nicholsinfo -config loop.yaml -points 100\n")
	}
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg := DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to open config")
		}
		cfg, err = LoadConfig(f)
		_ = f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("invalid config")
		}
		log.Debug().Str("path", *configPath).Int("stages", len(cfg.Stages)).Msg("config loaded")
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["wmin"] || *configPath == "" {
		cfg.Grid.Min = *wmin
	}
	if set["wmax"] || *configPath == "" {
		cfg.Grid.Max = *wmax
	}
	if set["points"] || *configPath == "" {
		cfg.Grid.Points = *points
	}
	if set["gain"] {
		cfg.GainDB = *gain
	}
	if set["unwrap"] {
		cfg.Unwrap = *unwrap
	}

	if set["num"] || set["den"] {
		n, err := parseCoefficients(*num)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -num")
		}
		d, err := parseCoefficients(*den)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -den")
		}
		cfg.Stages = append([]StageConfig{{Name: "cli", Kind: StageTransferFunction, Num: n, Den: d}}, cfg.Stages...)
	}

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatal().Err(err).Msg("nothing to evaluate")
	}

	v, err := cascade(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to evaluate cascade")
	}
	logSummary(log, v)

	if err := printTable(os.Stdout, v); err != nil {
		log.Error().Err(err).Msg("failed to write output")
		os.Exit(1)
	}
}

func logSummary(log zerolog.Logger, v *freqresp.Value) {
	wr, mr, err := v.Peak()
	if err != nil {
		return
	}
	ev := log.Info().Float64("peakW", wr).Float64("peakDB", mr)
	if bw, ok, err := v.Bandwidth(freqresp.DefaultBandwidthDrop); err == nil && ok {
		ev = ev.Float64("bandwidth", bw)
	}
	ev.Msg("response summary")
}

func printTable(w io.Writer, v *freqresp.Value) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "w [rad/s]\tPhase [deg]\tMag [dB]\tRe H\tIm H\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---------\t-----------\t--------\t----\t----\n"); err != nil {
		return err
	}

	freq := v.Frequency()
	resp := v.Response()
	h := v.ToComplex()
	for i := range freq {
		if _, err := fmt.Fprintf(tw, "%.6g\t%.3f\t%.3f\t%.6g\t%.6g\n",
			freq[i], real(resp[i]), imag(resp[i]), real(h[i]), imag(h[i])); err != nil {
			return err
		}
	}
	return tw.Flush()
}
