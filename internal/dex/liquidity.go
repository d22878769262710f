package dex

import (
	"math"

	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

// PositionAmounts estimates the principal a position currently holds,
// splitting its liquidity across the pool assets at the snapshot tick.
// Raw amounts are floored to whole base units; the small rounding loss is
// acceptable for reporting.
func PositionAmounts(pool model.Pool, pos Position) (model.AssetAmount, model.AssetAmount) {
	amount0 := model.ZeroAmount(pool.Asset0)
	amount1 := model.ZeroAmount(pool.Asset1)

	liquidity, _ := pos.Liquidity.Float64()
	if liquidity == 0 {
		return amount0, amount1
	}

	sqrtLower := math.Pow(1.0001, float64(pos.TickLower)/2)
	sqrtUpper := math.Pow(1.0001, float64(pos.TickUpper)/2)
	sqrtCurrent := math.Pow(1.0001, float64(pool.Tick)/2)

	var raw0, raw1 float64
	switch {
	case sqrtCurrent <= sqrtLower:
		raw0 = liquidity * (sqrtUpper - sqrtLower) / (sqrtLower * sqrtUpper)
	case sqrtCurrent >= sqrtUpper:
		raw1 = liquidity * (sqrtUpper - sqrtLower)
	default:
		raw0 = liquidity * (sqrtUpper - sqrtCurrent) / (sqrtCurrent * sqrtUpper)
		raw1 = liquidity * (sqrtCurrent - sqrtLower)
	}

	amount0.Raw = decimal.NewFromFloat(raw0).Floor()
	amount1.Raw = decimal.NewFromFloat(raw1).Floor()
	return amount0, amount1
}
