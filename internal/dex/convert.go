package dex

import (
	"context"

	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

// PoolConverter converts between the two assets of one pool snapshot.
// Amounts already denominated in the target asset pass through unchanged.
type PoolConverter struct {
	Pool model.Pool
}

func (c PoolConverter) Convert(_ context.Context, amount model.AssetAmount, to model.Asset) (model.AssetAmount, error) {
	if amount.Asset.Equal(to) {
		return amount, nil
	}
	return c.Pool.Convert(amount, to)
}

// RateConverter applies a fixed human-unit rate: one unit of the source
// asset is worth Rate units of the target asset.
type RateConverter struct {
	Rate decimal.Decimal
}

func (c RateConverter) Convert(_ context.Context, amount model.AssetAmount, to model.Asset) (model.AssetAmount, error) {
	if amount.Asset.Equal(to) {
		return amount, nil
	}
	scale := decimal.New(1, int32(to.Decimals)-int32(amount.Asset.Decimals))
	return model.NewAmount(to, amount.Raw.Mul(scale).Mul(c.Rate)), nil
}
