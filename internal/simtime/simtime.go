// Package simtime converts the ISO-8601 epoch string in the input JSON
// into the fractional day-number (days since 2000-01-01 00:00:00 UT) the
// Sun, Earth, and Moon ephemeris formulas in internal/ephemeris expect.
package simtime

import (
	"fmt"
	"time"

	"orbitsim/internal/simerr"
)

var j2000 = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const isoLayout = "2006-01-02T15:04:05"

// Day parses an ISO-8601 "YYYY-MM-DDTHH:MM:SS" UT timestamp and returns
// the (possibly fractional) number of days since 2000-01-01 00:00:00 UT.
func Day(iso string) (float64, error) {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return 0, simerr.Wrap(simerr.BadDate, fmt.Sprintf("parsing epoch %q", iso), err)
	}
	return t.Sub(j2000).Hours() / 24, nil
}
