package position

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name      string
		tick      int32
		lower     int32
		upper     int32
		liquidity decimal.Decimal
		want      Status
	}{
		{"no liquidity", 0, -100, 100, decimal.Zero, StatusInactive},
		{"inside range", 0, -100, 100, decimal.NewFromInt(1), StatusInRange},
		{"below range", -200, -100, 100, decimal.NewFromInt(1), StatusOutOfRange},
		{"above range", 200, -100, 100, decimal.NewFromInt(1), StatusOutOfRange},
		{"on lower bound", -100, -100, 100, decimal.NewFromInt(1), StatusOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStatus(tc.tick, tc.lower, tc.upper, tc.liquidity)
			if got != tc.want {
				t.Fatalf("status %s, want %s", got, tc.want)
			}
		})
	}
}
