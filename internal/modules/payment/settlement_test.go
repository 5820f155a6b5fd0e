package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCommission(t *testing.T) {
	tests := []struct {
		name        string
		amount, pct float64
		commission  float64
		owner       float64
	}{
		{"default ten percent", 100000, 10, 10000, 90000},
		{"fifteen percent", 180000, 15, 27000, 153000},
		{"zero amount", 0, 10, 0, 0},
		{"zero percent", 50000, 0, 0, 50000},
		{"full commission", 50000, 100, 50000, 0},
		{"rounds to cents", 99.99, 10, 10, 89.99},
		{"odd split", 33333, 7.5, 2499.98, 30833.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commission, owner := ComputeCommission(tt.amount, tt.pct)
			assert.InDelta(t, tt.commission, commission, 0.001)
			assert.InDelta(t, tt.owner, owner, 0.001)

			// the split always reconstructs the gross amount
			assert.InDelta(t, tt.amount, commission+owner, 0.001)
		})
	}
}
