package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Asset identifies a fungible token on a chain.
type Asset struct {
	ChainID  uint64 `json:"chain_id"`
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Equal reports whether two assets are the same token. Identity is
// chain id plus case-insensitive contract address.
func (a Asset) Equal(other Asset) bool {
	return a.ChainID == other.ChainID && strings.EqualFold(a.Address, other.Address)
}

// DecimalScale returns 10^decimals as a decimal value.
func (a Asset) DecimalScale() decimal.Decimal {
	return decimal.New(1, int32(a.Decimals))
}
