package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrAssetMismatch is returned when arithmetic mixes different assets.
var ErrAssetMismatch = errors.New("asset mismatch")

// AssetAmount is an exact quantity of one asset. Raw is the integer-scaled
// magnitude (token base units); the human value is Raw / 10^decimals.
type AssetAmount struct {
	Asset Asset           `json:"asset"`
	Raw   decimal.Decimal `json:"raw"`
}

// NewAmount builds an amount from a raw integer-scaled magnitude.
func NewAmount(asset Asset, raw decimal.Decimal) AssetAmount {
	return AssetAmount{Asset: asset, Raw: raw}
}

// ZeroAmount returns a zero quantity of the asset.
func ZeroAmount(asset Asset) AssetAmount {
	return AssetAmount{Asset: asset, Raw: decimal.Zero}
}

// AmountFromRaw parses a raw integer-scaled magnitude string.
func AmountFromRaw(asset Asset, raw string) (AssetAmount, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return AssetAmount{}, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return AssetAmount{Asset: asset, Raw: value}, nil
}

// Add returns a+b. Both amounts must be denominated in the same asset.
func (a AssetAmount) Add(b AssetAmount) (AssetAmount, error) {
	if !a.Asset.Equal(b.Asset) {
		return AssetAmount{}, fmt.Errorf("add %s to %s: %w", b.Asset.Symbol, a.Asset.Symbol, ErrAssetMismatch)
	}
	return AssetAmount{Asset: a.Asset, Raw: a.Raw.Add(b.Raw)}, nil
}

// Sub returns a-b. Both amounts must be denominated in the same asset.
func (a AssetAmount) Sub(b AssetAmount) (AssetAmount, error) {
	if !a.Asset.Equal(b.Asset) {
		return AssetAmount{}, fmt.Errorf("subtract %s from %s: %w", b.Asset.Symbol, a.Asset.Symbol, ErrAssetMismatch)
	}
	return AssetAmount{Asset: a.Asset, Raw: a.Raw.Sub(b.Raw)}, nil
}

// Cmp compares a against b (-1, 0, +1).
func (a AssetAmount) Cmp(b AssetAmount) (int, error) {
	if !a.Asset.Equal(b.Asset) {
		return 0, fmt.Errorf("compare %s with %s: %w", a.Asset.Symbol, b.Asset.Symbol, ErrAssetMismatch)
	}
	return a.Raw.Cmp(b.Raw), nil
}

// IsZero reports whether the amount is exactly zero.
func (a AssetAmount) IsZero() bool {
	return a.Raw.IsZero()
}

// Sign returns the sign of the amount (-1, 0, +1).
func (a AssetAmount) Sign() int {
	return a.Raw.Sign()
}

// Decimal returns the human-scaled value, Raw / 10^decimals.
func (a AssetAmount) Decimal() decimal.Decimal {
	return a.Raw.DivRound(a.Asset.DecimalScale(), int32(a.Asset.Decimals)+8)
}

// ToSignificant renders the human-scaled value limited to the given number
// of significant digits.
func (a AssetAmount) ToSignificant(digits int32) string {
	return toSignificant(a.Decimal(), digits)
}

func toSignificant(value decimal.Decimal, digits int32) string {
	if digits <= 0 {
		digits = 1
	}
	if value.IsZero() {
		return "0"
	}

	ten := decimal.New(1, 1)
	one := decimal.New(1, 0)

	// order of magnitude of the leading digit
	var magnitude int32
	abs := value.Abs()
	for abs.GreaterThanOrEqual(ten) {
		abs = abs.DivRound(ten, 32)
		magnitude++
	}
	for abs.LessThan(one) {
		abs = abs.Mul(ten)
		magnitude--
	}

	return value.Round(digits - 1 - magnitude).String()
}
