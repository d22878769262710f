package position

import (
	"errors"
	"fmt"

	"positionScope/internal/model"
)

// ErrUnknownAsset is returned when a base asset matches neither pool asset.
var ErrUnknownAsset = errors.New("base asset not in pool")

// QuoteValue values the pair (amount0, amount1) as a single amount of the
// base asset using the pool's snapshot price. The side quoted is the one
// whose pool asset does not equal the base asset; the other side is
// converted through the pool price.
func QuoteValue(pool model.Pool, base model.Asset, amount0, amount1 model.AssetAmount) (model.AssetAmount, error) {
	switch {
	case pool.Asset0.Equal(base):
		converted, err := pool.Convert(amount1, pool.Asset0)
		if err != nil {
			return model.AssetAmount{}, err
		}
		return converted.Add(amount0)
	case pool.Asset1.Equal(base):
		converted, err := pool.Convert(amount0, pool.Asset1)
		if err != nil {
			return model.AssetAmount{}, err
		}
		return converted.Add(amount1)
	default:
		return model.AssetAmount{}, fmt.Errorf("quote in %s for pool %s/%s: %w",
			base.Symbol, pool.Asset0.Symbol, pool.Asset1.Symbol, ErrUnknownAsset)
	}
}
