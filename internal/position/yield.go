package position

import (
	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

// secondsPerYear uses a flat 365-day year, no leap or calendar adjustment.
const secondsPerYear = 365 * 24 * 60 * 60

const yieldPrecision = 32

// periodState is the fold state of the yield accumulator: the open window
// between two fee collections. Removed liquidity is tracked separately and
// only applied when the period closes, preserving the yield denominator
// until then.
type periodState struct {
	start   uint64
	added   model.AssetAmount
	removed model.AssetAmount
}

// periodYield computes the per-second fee rate over one period as a
// raw-scaled amount of the liquidity asset. Zero liquidity or a zero-length
// interval yields zero, never a division error.
func periodYield(fees, liquidity model.AssetAmount, start, end uint64) model.AssetAmount {
	zero := model.ZeroAmount(liquidity.Asset)
	if liquidity.IsZero() {
		return zero
	}
	if end <= start {
		return zero
	}
	elapsed := decimal.NewFromInt(int64(end - start))
	rate := fees.Raw.
		Mul(liquidity.Asset.DecimalScale()).
		DivRound(liquidity.Raw, yieldPrecision).
		DivRound(elapsed, yieldPrecision)
	return model.NewAmount(liquidity.Asset, rate)
}

// ComputeFeeAPY walks the reconciled transaction history and annualizes the
// mean per-second fee yield across collection periods. uncollectedFees are
// the accrued, not-yet-collected legs of the position (zero, one, or two
// amounts); when nonzero they contribute one trailing sample over the still
// open period ending at now.
//
// The result is a percentage rounded to two decimal places.
func ComputeFeeAPY(pool model.Pool, base model.Asset, uncollectedFees []model.AssetAmount, txs []model.ReconciledTransaction, now uint64) (float64, error) {
	if len(txs) == 0 {
		return 0, nil
	}

	period := periodState{
		start:   now,
		added:   model.ZeroAmount(base),
		removed: model.ZeroAmount(base),
	}
	samples := make([]model.AssetAmount, 0, len(txs))

	for _, tx := range txs {
		value, err := QuoteValue(pool, base, tx.Amount0, tx.Amount1)
		if err != nil {
			return 0, err
		}

		switch tx.Type {
		case model.KindMint:
			if period.added.Sign() <= 0 {
				period.start = tx.Timestamp
			}
			period.added.Raw = period.added.Raw.Add(value.Raw)
		case model.KindBurn:
			period.removed.Raw = period.removed.Raw.Add(value.Raw)
		case model.KindCollect:
			// tx amounts are already fee-only after reconciliation
			samples = append(samples, periodYield(value, period.added, period.start, tx.Timestamp))

			period.added.Raw = period.added.Raw.Sub(period.removed.Raw)
			period.removed = model.ZeroAmount(base)
			period.start = tx.Timestamp
		}
	}

	trailing, err := combineUncollected(pool, base, uncollectedFees)
	if err != nil {
		return 0, err
	}
	if !trailing.IsZero() {
		samples = append(samples, periodYield(trailing, period.added, period.start, now))
	}

	if len(samples) == 0 {
		return 0, nil
	}

	total := decimal.Zero
	for _, sample := range samples {
		total = total.Add(sample.Raw)
	}
	mean := total.DivRound(decimal.NewFromInt(int64(len(samples))), yieldPrecision)

	apy := mean.
		Mul(decimal.NewFromInt(secondsPerYear)).
		Mul(decimal.NewFromInt(100)).
		DivRound(base.DecimalScale(), yieldPrecision)

	result, _ := apy.Round(2).Float64()
	return result, nil
}

func combineUncollected(pool model.Pool, base model.Asset, fees []model.AssetAmount) (model.AssetAmount, error) {
	switch len(fees) {
	case 0:
		return model.ZeroAmount(base), nil
	case 1:
		return fees[0], nil
	default:
		return QuoteValue(pool, base, fees[0], fees[1])
	}
}
