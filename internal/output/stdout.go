package output

import (
	"bufio"
	"fmt"
	"os"
)

// StdoutSink writes tab-separated rows to stdout through a buffered
// writer, the way digest2's internal/d2prog prints its result rows with
// a bufio.Writer wrapped around os.Stdout rather than one fmt.Println
// per line. It is the default sink when no -o directory is given.
type StdoutSink struct {
	w *bufio.Writer
}

// NewStdoutSink returns a StdoutSink writing to os.Stdout.
func NewStdoutSink() *StdoutSink {
	return &StdoutSink{w: bufio.NewWriter(os.Stdout)}
}

func (s *StdoutSink) WriteSolarObject(r SolarObjectRecord) error {
	_, err := fmt.Fprintf(s.w, "solar\t%.6f\t%s\t%.6f\t%.6f\t%.6f\n", r.SimTimeS, r.Kind, r.X, r.Y, r.Z)
	return err
}

func (s *StdoutSink) WritePerturbation(r PerturbationRecord) error {
	_, err := fmt.Fprintf(s.w, "perturb\t%d\t%.6f\t%s\t%.6e\t%.6e\t%.6e\n", r.BodyID, r.SimTimeS, r.PerturbType, r.AX, r.AY, r.AZ)
	return err
}

func (s *StdoutSink) WriteObjectState(r ObjectStateRecord) error {
	_, err := fmt.Fprintf(s.w, "state\t%d\t%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
		r.BodyID, r.Kind, r.SimTimeS, r.X, r.Y, r.Z, r.VX, r.VY, r.VZ)
	return err
}

func (s *StdoutSink) Close() error { return s.w.Flush() }
