package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Pool is an immutable snapshot of a V3 pool: the asset pair, the fee tier,
// and the spot price at the time of the snapshot. A new value is produced
// whenever on-chain state changes.
type Pool struct {
	ChainID uint64 `json:"chain_id"`
	Address string `json:"address"`
	Asset0  Asset  `json:"asset0"`
	Asset1  Asset  `json:"asset1"`
	Fee     uint32 `json:"fee"`
	Tick    int32  `json:"tick"`
	// Price is the amount of asset1 per one asset0, in human units.
	Price decimal.Decimal `json:"price"`
}

// Convert re-quotes amount into the other pool asset at the snapshot price.
// The amount must be denominated in one pool asset and the target must be
// the other one. A zero snapshot price converts everything to zero rather
// than dividing by zero.
func (p Pool) Convert(amount AssetAmount, to Asset) (AssetAmount, error) {
	from := amount.Asset
	switch {
	case from.Equal(p.Asset1) && to.Equal(p.Asset0):
		if p.Price.IsZero() {
			return ZeroAmount(to), nil
		}
		scale := decimal.New(1, int32(to.Decimals)-int32(from.Decimals))
		raw := amount.Raw.Mul(scale).DivRound(p.Price, 24)
		return AssetAmount{Asset: to, Raw: raw}, nil
	case from.Equal(p.Asset0) && to.Equal(p.Asset1):
		scale := decimal.New(1, int32(to.Decimals)-int32(from.Decimals))
		raw := amount.Raw.Mul(scale).Mul(p.Price)
		return AssetAmount{Asset: to, Raw: raw}, nil
	default:
		return AssetAmount{}, fmt.Errorf("convert %s to %s: %w", from.Symbol, to.Symbol, ErrAssetMismatch)
	}
}
