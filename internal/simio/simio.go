// Package simio loads the initial-state JSON file spec.md §6 describes:
// an epoch plus debris and spacecraft initial position/velocity vectors.
package simio

import (
	"encoding/json"
	"os"

	"orbitsim/internal/simerr"
	"orbitsim/internal/simtime"
	"orbitsim/internal/smallbody"
	"orbitsim/internal/vector"
)

type elementJSON struct {
	XDis float64 `json:"x_dis"`
	YDis float64 `json:"y_dis"`
	ZDis float64 `json:"z_dis"`
	XVel float64 `json:"x_vel"`
	YVel float64 `json:"y_vel"`
	ZVel float64 `json:"z_vel"`
}

type inputFile struct {
	Date       string        `json:"date"`
	Debris     []elementJSON `json:"debris"`
	Spacecraft []elementJSON `json:"spacecraft"`
}

// Load reads and parses the initial-state JSON file at path, returning
// the epoch day (per internal/simtime.Day) and the small bodies it
// describes. Debris are assigned ids first, in file order, followed by
// spacecraft continuing the same id sequence — original_source/src/innout.rs's
// construction order, restated in spec.md §6.
func Load(path string) (day float64, bodies []smallbody.Body, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return 0, nil, simerr.Wrap(simerr.InputParse, "opening input file", ferr)
	}
	defer f.Close()

	var in inputFile
	if derr := json.NewDecoder(f).Decode(&in); derr != nil {
		return 0, nil, simerr.Wrap(simerr.InputParse, "decoding input JSON", derr)
	}

	day, terr := simtime.Day(in.Date)
	if terr != nil {
		return 0, nil, terr
	}

	var id uint32
	for _, e := range in.Debris {
		bodies = append(bodies, toBody(id, smallbody.Debris, e))
		id++
	}
	for _, e := range in.Spacecraft {
		bodies = append(bodies, toBody(id, smallbody.Spacecraft, e))
		id++
	}
	return day, bodies, nil
}

func toBody(id uint32, kind smallbody.Kind, e elementJSON) smallbody.Body {
	return smallbody.Body{
		ID:       id,
		Kind:     kind,
		Position: vector.Vector3{X: e.XDis, Y: e.YDis, Z: e.ZDis},
		Velocity: vector.Vector3{X: e.XVel, Y: e.YVel, Z: e.ZVel},
	}
}
