package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNightlyPrice(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	// a four-day stay priced from a 45000 nightly rate reads back as
	// that same rate per day
	r := Reservation{StartDate: date("2025-10-05"), EndDate: date("2025-10-08"), TotalPrice: 180000}
	assert.InDelta(t, 45000.0, r.NightlyPrice(), 0.001)

	single := Reservation{StartDate: date("2025-10-10"), EndDate: date("2025-10-10"), TotalPrice: 30000}
	assert.InDelta(t, 30000.0, single.NightlyPrice(), 0.001)
}
