package subgraph

import (
	"testing"

	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

func testPool() model.Pool {
	return model.Pool{
		ChainID: 1,
		Address: "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8",
		Asset0: model.Asset{
			ChainID:  1,
			Address:  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
			Symbol:   "USDC",
			Decimals: 6,
		},
		Asset1: model.Asset{
			ChainID:  1,
			Address:  "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
			Symbol:   "WETH",
			Decimals: 18,
		},
		Fee:   3000,
		Price: decimal.RequireFromString("0.0005"),
	}
}

func TestDecodeEvent(t *testing.T) {
	ev := poolEvent{
		TickLower: "-887220",
		TickUpper: "887220",
		Timestamp: "1700000000",
		Amount0:   "1500.5",
		Amount1:   "0.25",
		Transaction: transactionRef{
			ID:       "0xabc",
			GasUsed:  "210000",
			GasPrice: "30000000000",
		},
	}

	got, err := decodeEvent(model.KindMint, ev, testPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != model.KindMint {
		t.Fatalf("kind %s, want mint", got.Kind)
	}
	if got.TickLower != -887220 || got.TickUpper != 887220 {
		t.Fatalf("ticks (%d, %d)", got.TickLower, got.TickUpper)
	}
	if got.Timestamp != 1700000000 {
		t.Fatalf("timestamp %d", got.Timestamp)
	}
	if got.Amount0.Raw.String() != "1500500000" {
		t.Fatalf("amount0 %s, want 1500500000", got.Amount0.Raw.String())
	}
	if got.Amount1.Raw.String() != "250000000000000000" {
		t.Fatalf("amount1 %s, want 250000000000000000", got.Amount1.Raw.String())
	}
	if got.TxID != "0xabc" {
		t.Fatalf("tx id %s", got.TxID)
	}
	if got.GasUsed.String() != "210000" || got.GasPrice.String() != "30000000000" {
		t.Fatalf("gas (%s, %s)", got.GasUsed.String(), got.GasPrice.String())
	}
}

func TestDecodeEventBadTick(t *testing.T) {
	ev := poolEvent{
		TickLower:   "not-a-tick",
		TickUpper:   "0",
		Timestamp:   "0",
		Amount0:     "0",
		Amount1:     "0",
		Transaction: transactionRef{ID: "0x", GasUsed: "0", GasPrice: "0"},
	}
	if _, err := decodeEvent(model.KindBurn, ev, testPool()); err == nil {
		t.Fatal("expected error for malformed tick")
	}
}

func TestScaleAmountRoundsUp(t *testing.T) {
	asset := testPool().Asset0

	got, err := scaleAmount("1.000000001", asset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Raw.String() != "1000001" {
		t.Fatalf("raw %s, want 1000001", got.Raw.String())
	}

	exact, err := scaleAmount("2", asset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exact.Raw.String() != "2000000" {
		t.Fatalf("raw %s, want 2000000", exact.Raw.String())
	}
}
