package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-nichols/control/freqresp"
	"github.com/cwbudde/algo-nichols/control/lti"
	"github.com/cwbudde/algo-nichols/control/nichols"
)

// buildSystem turns a stage into an evaluable SISO system.
func buildSystem(s StageConfig) (freqresp.ComplexResponder, error) {
	switch s.Kind {
	case StageTransferFunction:
		return lti.NewTransferFunction(s.Num, s.Den)
	case StageStateSpace:
		a, err := denseFromRows("a", s.A)
		if err != nil {
			return nil, err
		}
		b, err := denseFromRows("b", s.B)
		if err != nil {
			return nil, err
		}
		c, err := denseFromRows("c", s.C)
		if err != nil {
			return nil, err
		}
		var d mat.Matrix
		if len(s.D) > 0 {
			dd, err := denseFromRows("d", s.D)
			if err != nil {
				return nil, err
			}
			d = dd
		}
		return lti.NewStateSpace(a, b, c, d)
	case StageGain:
		return lti.Gain(s.K), nil
	default:
		return nil, fmt.Errorf("unknown stage kind %q", s.Kind)
	}
}

func denseFromRows(name string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix %s is empty", name)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("matrix %s row %d has %d columns, want %d", name, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// cascade evaluates every stage on the configured grid and composes them in
// series. The first stage is built with continuous phase; later stages are
// added with principal-value phase, so the result is unwrapped again when
// cfg.Unwrap is set.
func cascade(cfg Config, log zerolog.Logger) (*freqresp.Value, error) {
	grid, err := freqresp.LogSpace(cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Points)
	if err != nil {
		return nil, err
	}

	var out *freqresp.Value
	for i, s := range cfg.Stages {
		sys, err := buildSystem(s)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.Name, err)
		}

		if out == nil {
			out, err = freqresp.FromResponder(sys, grid, nichols.WithUnwrap())
		} else {
			out, err = out.SeriesSystem(sys)
		}
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.Name, err)
		}

		if tf, ok := sys.(*lti.TransferFunction); ok {
			if poles, err := tf.Poles(); err == nil {
				log.Debug().Int("stage", i).Str("poles", fmt.Sprint(poles)).Msg("transfer function poles")
			}
		}

		log.Debug().
			Int("stage", i).
			Str("name", s.Name).
			Str("kind", s.Kind.String()).
			Msg("stage added to cascade")
	}

	if cfg.GainDB != 0 {
		out, err = out.SeriesGain(cfg.GainDB)
		if err != nil {
			return nil, err
		}
		log.Debug().Float64("gainDB", cfg.GainDB).Msg("gain applied")
	}

	if cfg.Unwrap {
		out, err = out.Unwrap()
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
