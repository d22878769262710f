package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func usdc() Asset {
	return Asset{ChainID: 1, Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Symbol: "USDC", Decimals: 6}
}

func weth() Asset {
	return Asset{ChainID: 1, Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Symbol: "WETH", Decimals: 18}
}

func TestAmountAddSameAsset(t *testing.T) {
	a := NewAmount(usdc(), decimal.NewFromInt(1500000))
	b := NewAmount(usdc(), decimal.NewFromInt(500000))

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Raw.String() != "2000000" {
		t.Fatalf("sum %s, want 2000000", sum.Raw.String())
	}
}

func TestAmountMixedAssets(t *testing.T) {
	a := NewAmount(usdc(), decimal.NewFromInt(1))
	b := NewAmount(weth(), decimal.NewFromInt(1))

	if _, err := a.Add(b); !errors.Is(err, ErrAssetMismatch) {
		t.Fatalf("Add error %v, want ErrAssetMismatch", err)
	}
	if _, err := a.Sub(b); !errors.Is(err, ErrAssetMismatch) {
		t.Fatalf("Sub error %v, want ErrAssetMismatch", err)
	}
	if _, err := a.Cmp(b); !errors.Is(err, ErrAssetMismatch) {
		t.Fatalf("Cmp error %v, want ErrAssetMismatch", err)
	}
}

func TestAssetEqualCaseInsensitive(t *testing.T) {
	a := usdc()
	b := usdc()
	b.Address = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	if !a.Equal(b) {
		t.Fatal("expected addresses to compare case-insensitively")
	}

	c := usdc()
	c.ChainID = 137
	if a.Equal(c) {
		t.Fatal("expected different chains to compare unequal")
	}
}

func TestAmountDecimal(t *testing.T) {
	a := NewAmount(usdc(), decimal.NewFromInt(1500000))
	if got := a.Decimal().String(); got != "1.5" {
		t.Fatalf("decimal %s, want 1.5", got)
	}
}

func TestToSignificant(t *testing.T) {
	tests := []struct {
		raw    string
		digits int32
		want   string
	}{
		{"1234567", 3, "1.23"},
		{"1236000", 3, "1.24"},
		{"1500000", 6, "1.5"},
		{"-6", 6, "-0.000006"},
		{"101000000", 2, "100"},
		{"0", 6, "0"},
	}

	for _, tc := range tests {
		a := NewAmount(usdc(), decimal.RequireFromString(tc.raw))
		if got := a.ToSignificant(tc.digits); got != tc.want {
			t.Fatalf("ToSignificant(%s, %d) = %s, want %s", tc.raw, tc.digits, got, tc.want)
		}
	}
}
