package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSVSinkWritesHeadersAndRows(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewCSVSink(dir)
	if err != nil {
		t.Fatalf("NewCSVSink() error = %v", err)
	}

	if err := sink.WriteSolarObject(SolarObjectRecord{SimTimeS: 1, Kind: "Sun", X: 0, Y: 0, Z: 0}); err != nil {
		t.Fatalf("WriteSolarObject() error = %v", err)
	}
	if err := sink.WritePerturbation(PerturbationRecord{BodyID: 3, SimTimeS: 1, PerturbType: "solar_obj_Sun", AX: 1, AY: 2, AZ: 3}); err != nil {
		t.Fatalf("WritePerturbation() error = %v", err)
	}
	if err := sink.WriteObjectState(ObjectStateRecord{BodyID: 3, Kind: "Debris", SimTimeS: 1}); err != nil {
		t.Fatalf("WriteObjectState() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	for name, want := range map[string]string{
		"solar_objects.csv":   "sim_time_s,kind,x_m,y_m,z_m",
		"perturbations.csv":   "body_id,sim_time_s,perturb_type,ax,ay,az",
		"object_states.csv":   "body_id,kind,sim_time_s,x_m,y_m,z_m,vx,vy,vz",
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", name, err)
		}
		if !strings.HasPrefix(string(data), want) {
			t.Errorf("%s header = %q, want prefix %q", name, string(data), want)
		}
	}
}
