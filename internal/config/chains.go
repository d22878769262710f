package config

import (
	"fmt"

	"positionScope/internal/model"
)

// CurrencyRegistry maps a chain id to the asset gas costs are valued in.
// It is passed into metrics computations instead of being hard-coded there.
type CurrencyRegistry map[uint64]model.Asset

// DefaultCurrencyRegistry covers mainnet (wrapped ether) and Polygon
// (wrapped matic).
func DefaultCurrencyRegistry() CurrencyRegistry {
	return CurrencyRegistry{
		1: {
			ChainID:  1,
			Address:  "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
			Symbol:   "WETH",
			Decimals: 18,
		},
		137: {
			ChainID:  137,
			Address:  "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270",
			Symbol:   "WMATIC",
			Decimals: 18,
		},
	}
}

// GasAsset returns the gas-currency asset for a chain.
func (r CurrencyRegistry) GasAsset(chainID uint64) (model.Asset, error) {
	asset, ok := r[chainID]
	if !ok {
		return model.Asset{}, fmt.Errorf("no gas currency configured for chain %d", chainID)
	}
	return asset, nil
}
