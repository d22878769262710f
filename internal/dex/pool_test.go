package dex

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

func TestPriceFromSqrtX96(t *testing.T) {
	q96 := new(big.Int).Lsh(big.NewInt(1), 96)

	// sqrtPrice == 2^96 encodes a 1:1 price
	if got := priceFromSqrtX96(q96, 6, 6); got.String() != "1" {
		t.Fatalf("price %s, want 1", got.String())
	}

	// doubling the sqrt price quadruples the price; a 12 decimal gap
	// shifts it by 10^12
	doubled := new(big.Int).Lsh(q96, 1)
	if got := priceFromSqrtX96(doubled, 18, 6); got.String() != "4000000000000" {
		t.Fatalf("price %s, want 4000000000000", got.String())
	}

	if got := priceFromSqrtX96(nil, 6, 6); !got.IsZero() {
		t.Fatalf("price %s, want 0", got.String())
	}
}

func amountsPool(tick int32) model.Pool {
	return model.Pool{
		ChainID: 1,
		Address: "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8",
		Asset0:  model.Asset{ChainID: 1, Address: "0xaaa", Symbol: "AAA", Decimals: 6},
		Asset1:  model.Asset{ChainID: 1, Address: "0xbbb", Symbol: "BBB", Decimals: 6},
		Fee:     3000,
		Tick:    tick,
		Price:   decimal.NewFromInt(1),
	}
}

func TestPositionAmountsInRange(t *testing.T) {
	pos := Position{
		TokenID:   big.NewInt(1),
		TickLower: -100,
		TickUpper: 100,
		Liquidity: decimal.NewFromInt(1000),
	}

	amount0, amount1 := PositionAmounts(amountsPool(0), pos)
	if amount0.Raw.String() != "4" {
		t.Fatalf("amount0 %s, want 4", amount0.Raw.String())
	}
	if amount1.Raw.String() != "4" {
		t.Fatalf("amount1 %s, want 4", amount1.Raw.String())
	}
}

func TestPositionAmountsOutOfRange(t *testing.T) {
	pos := Position{
		TokenID:   big.NewInt(1),
		TickLower: -100,
		TickUpper: 100,
		Liquidity: decimal.NewFromInt(1000),
	}

	amount0, amount1 := PositionAmounts(amountsPool(-200), pos)
	if amount0.IsZero() || !amount1.IsZero() {
		t.Fatalf("below range: amounts (%s, %s)", amount0.Raw.String(), amount1.Raw.String())
	}

	amount0, amount1 = PositionAmounts(amountsPool(200), pos)
	if !amount0.IsZero() || amount1.IsZero() {
		t.Fatalf("above range: amounts (%s, %s)", amount0.Raw.String(), amount1.Raw.String())
	}
}

func TestPositionAmountsNoLiquidity(t *testing.T) {
	pos := Position{
		TokenID:   big.NewInt(1),
		TickLower: -100,
		TickUpper: 100,
		Liquidity: decimal.Zero,
	}

	amount0, amount1 := PositionAmounts(amountsPool(0), pos)
	if !amount0.IsZero() || !amount1.IsZero() {
		t.Fatalf("amounts (%s, %s), want zero", amount0.Raw.String(), amount1.Raw.String())
	}
}
