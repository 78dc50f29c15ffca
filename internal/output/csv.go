package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"orbitsim/internal/simerr"
)

// CSVSink writes the three output tables spec.md §6 describes to
// separate files under a directory, using encoding/csv — the
// straightforward choice for a record sink spec.md itself scopes as a
// replaceable boundary and for which the retrieved pack carries no
// preferred third-party alternative.
type CSVSink struct {
	dir      string
	solarF   *os.File
	perturbF *os.File
	stateF   *os.File
	solarW   *csv.Writer
	perturbW *csv.Writer
	stateW   *csv.Writer
}

// NewCSVSink creates dir if needed and opens the three output files
// inside it, writing their header rows.
func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, simerr.Wrap(simerr.OutputSinkFailure, "creating output directory", err)
	}

	solarF, err := os.Create(filepath.Join(dir, "solar_objects.csv"))
	if err != nil {
		return nil, simerr.Wrap(simerr.OutputSinkFailure, "creating solar_objects.csv", err)
	}
	perturbF, err := os.Create(filepath.Join(dir, "perturbations.csv"))
	if err != nil {
		solarF.Close()
		return nil, simerr.Wrap(simerr.OutputSinkFailure, "creating perturbations.csv", err)
	}
	stateF, err := os.Create(filepath.Join(dir, "object_states.csv"))
	if err != nil {
		solarF.Close()
		perturbF.Close()
		return nil, simerr.Wrap(simerr.OutputSinkFailure, "creating object_states.csv", err)
	}

	s := &CSVSink{
		dir: dir,
		solarF: solarF, perturbF: perturbF, stateF: stateF,
		solarW: csv.NewWriter(solarF), perturbW: csv.NewWriter(perturbF), stateW: csv.NewWriter(stateF),
	}

	if err := s.solarW.Write([]string{"sim_time_s", "kind", "x_m", "y_m", "z_m"}); err != nil {
		return nil, simerr.Wrap(simerr.OutputSinkFailure, "writing solar_objects.csv header", err)
	}
	if err := s.perturbW.Write([]string{"body_id", "sim_time_s", "perturb_type", "ax", "ay", "az"}); err != nil {
		return nil, simerr.Wrap(simerr.OutputSinkFailure, "writing perturbations.csv header", err)
	}
	if err := s.stateW.Write([]string{"body_id", "kind", "sim_time_s", "x_m", "y_m", "z_m", "vx", "vy", "vz"}); err != nil {
		return nil, simerr.Wrap(simerr.OutputSinkFailure, "writing object_states.csv header", err)
	}
	return s, nil
}

func f(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func u(v uint32) string  { return strconv.FormatUint(uint64(v), 10) }

func (s *CSVSink) WriteSolarObject(r SolarObjectRecord) error {
	if err := s.solarW.Write([]string{f(r.SimTimeS), r.Kind, f(r.X), f(r.Y), f(r.Z)}); err != nil {
		return simerr.Wrap(simerr.OutputSinkFailure, "writing solar object record", err)
	}
	return nil
}

func (s *CSVSink) WritePerturbation(r PerturbationRecord) error {
	if err := s.perturbW.Write([]string{u(r.BodyID), f(r.SimTimeS), r.PerturbType, f(r.AX), f(r.AY), f(r.AZ)}); err != nil {
		return simerr.Wrap(simerr.OutputSinkFailure, "writing perturbation record", err)
	}
	return nil
}

func (s *CSVSink) WriteObjectState(r ObjectStateRecord) error {
	if err := s.stateW.Write([]string{
		u(r.BodyID), r.Kind, f(r.SimTimeS),
		f(r.X), f(r.Y), f(r.Z),
		f(r.VX), f(r.VY), f(r.VZ),
	}); err != nil {
		return simerr.Wrap(simerr.OutputSinkFailure, "writing object state record", err)
	}
	return nil
}

// Close flushes and closes all three files, reporting the first error
// encountered.
func (s *CSVSink) Close() error {
	s.solarW.Flush()
	s.perturbW.Flush()
	s.stateW.Flush()

	var firstErr error
	for _, e := range []error{s.solarW.Error(), s.perturbW.Error(), s.stateW.Error()} {
		if e != nil && firstErr == nil {
			firstErr = e
		}
	}
	for _, fh := range []*os.File{s.solarF, s.perturbF, s.stateF} {
		if err := fh.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return simerr.Wrap(simerr.OutputSinkFailure, "closing output files", firstErr)
	}
	return nil
}
