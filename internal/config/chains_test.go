package config

import (
	"testing"
)

func TestDefaultCurrencyRegistry(t *testing.T) {
	registry := DefaultCurrencyRegistry()

	eth, err := registry.GasAsset(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eth.Symbol != "WETH" || eth.Decimals != 18 {
		t.Fatalf("mainnet gas asset %+v", eth)
	}

	matic, err := registry.GasAsset(137)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matic.Symbol != "WMATIC" || matic.ChainID != 137 {
		t.Fatalf("polygon gas asset %+v", matic)
	}
}

func TestGasAssetUnknownChain(t *testing.T) {
	if _, err := DefaultCurrencyRegistry().GasAsset(42161); err == nil {
		t.Fatal("expected error for unconfigured chain")
	}
}
