package position

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

// Totals are the base-asset-valued sums of a reconciled transaction history,
// plus the gas spent in the chain's gas currency.
type Totals struct {
	Mint    model.AssetAmount
	Burn    model.AssetAmount
	Collect model.AssetAmount
	GasCost model.AssetAmount
}

// Return is the realized outcome of a position history.
type Return struct {
	Value   model.AssetAmount
	Percent float64
}

// Converter converts an amount into another asset at a current rate. It is
// only consulted for gas-currency conversion in the return computation.
type Converter interface {
	Convert(ctx context.Context, amount model.AssetAmount, to model.Asset) (model.AssetAmount, error)
}

// ComputeTotals folds the transaction list, summing quoted values by type
// and gas costs in gasAsset.
func ComputeTotals(txs []model.ReconciledTransaction, base model.Asset, pool model.Pool, gasAsset model.Asset) (Totals, error) {
	totals := Totals{
		Mint:    model.ZeroAmount(base),
		Burn:    model.ZeroAmount(base),
		Collect: model.ZeroAmount(base),
		GasCost: model.ZeroAmount(gasAsset),
	}

	for _, tx := range txs {
		value, err := QuoteValue(pool, base, tx.Amount0, tx.Amount1)
		if err != nil {
			return Totals{}, err
		}

		switch tx.Type {
		case model.KindMint:
			totals.Mint.Raw = totals.Mint.Raw.Add(value.Raw)
		case model.KindBurn:
			totals.Burn.Raw = totals.Burn.Raw.Add(value.Raw)
		case model.KindCollect:
			totals.Collect.Raw = totals.Collect.Raw.Add(value.Raw)
		}

		totals.GasCost.Raw = totals.GasCost.Raw.Add(tx.GasCost.Raw)
	}

	return totals, nil
}

// ComputeReturn derives the realized return from the totals and the current
// position value. The percentage goes through limited-significant-digit
// rendering and float re-parsing; the precision loss is accepted.
func ComputeReturn(ctx context.Context, base model.Asset, totals Totals, currentValue model.AssetAmount, converter Converter) (Return, error) {
	gasConverted, err := converter.Convert(ctx, totals.GasCost, base)
	if err != nil {
		return Return{}, err
	}

	value := model.NewAmount(base, currentValue.Raw.
		Add(totals.Burn.Raw).
		Add(totals.Collect.Raw).
		Sub(totals.Mint.Raw).
		Sub(gasConverted.Raw))

	invested := model.NewAmount(base, totals.Mint.Raw.Add(gasConverted.Raw))

	numerator, err := strconv.ParseFloat(value.ToSignificant(6), 64)
	if err != nil {
		return Return{}, err
	}
	denominator, err := strconv.ParseFloat(invested.ToSignificant(6), 64)
	if err != nil {
		return Return{}, err
	}

	var percent float64
	if denominator != 0 {
		percent = numerator / denominator * 100
	}

	return Return{Value: value, Percent: percent}, nil
}

// ComputeAPR annualizes the return percentage over the position lifetime.
// The window ends at the last transaction when the position is fully
// withdrawn (zero remaining liquidity), otherwise at now. A zero-length
// window returns 0 rather than dividing by it.
func ComputeAPR(txs []model.ReconciledTransaction, returnPercent float64, currentLiquidity decimal.Decimal, now uint64) float64 {
	if len(txs) == 0 {
		return 0
	}

	start := txs[0].Timestamp
	end := now
	if currentLiquidity.IsZero() {
		end = txs[len(txs)-1].Timestamp
	}
	if end <= start {
		return 0
	}

	seconds := float64(end - start)
	return returnPercent / seconds * secondsPerYear
}
