package position

import "github.com/shopspring/decimal"

// Status classifies a position against the pool's current tick.
type Status uint8

const (
	StatusInactive Status = iota
	StatusInRange
	StatusOutOfRange
)

func (s Status) String() string {
	switch s {
	case StatusInactive:
		return "inactive"
	case StatusInRange:
		return "in-range"
	case StatusOutOfRange:
		return "out-of-range"
	default:
		return "unknown"
	}
}

// ComputeStatus returns the status of a position given the pool's current
// tick. A position with no liquidity is inactive regardless of range.
func ComputeStatus(tickCurrent, tickLower, tickUpper int32, liquidity decimal.Decimal) Status {
	if liquidity.IsZero() {
		return StatusInactive
	}
	if tickLower < tickCurrent && tickCurrent < tickUpper {
		return StatusInRange
	}
	return StatusOutOfRange
}
