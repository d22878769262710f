package position

import (
	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

func testAssets() (model.Asset, model.Asset) {
	asset0 := model.Asset{
		ChainID:  1,
		Address:  "0x1111111111111111111111111111111111111111",
		Symbol:   "AAA",
		Decimals: 6,
	}
	asset1 := model.Asset{
		ChainID:  1,
		Address:  "0x2222222222222222222222222222222222222222",
		Symbol:   "BBB",
		Decimals: 6,
	}
	return asset0, asset1
}

func testPool(price string) model.Pool {
	asset0, asset1 := testAssets()
	return model.Pool{
		ChainID: 1,
		Address: "0x3333333333333333333333333333333333333333",
		Asset0:  asset0,
		Asset1:  asset1,
		Fee:     3000,
		Price:   decimal.RequireFromString(price),
	}
}

func amt(asset model.Asset, raw int64) model.AssetAmount {
	return model.NewAmount(asset, decimal.NewFromInt(raw))
}

func rawEvent(kind model.EventKind, txID string, ts uint64, raw0, raw1 int64, gasUsed, gasPrice int64) model.RawEvent {
	asset0, asset1 := testAssets()
	return model.RawEvent{
		Kind:      kind,
		TickLower: -100,
		TickUpper: 100,
		Timestamp: ts,
		Amount0:   amt(asset0, raw0),
		Amount1:   amt(asset1, raw1),
		TxID:      txID,
		GasUsed:   decimal.NewFromInt(gasUsed),
		GasPrice:  decimal.NewFromInt(gasPrice),
	}
}

func gasAsset() model.Asset {
	return model.Asset{
		ChainID:  1,
		Address:  "0x4444444444444444444444444444444444444444",
		Symbol:   "WETH",
		Decimals: 18,
	}
}

func tx(kind model.EventKind, id string, ts uint64, raw0, raw1 int64) model.ReconciledTransaction {
	asset0, asset1 := testAssets()
	return model.ReconciledTransaction{
		ID:        id,
		Type:      kind,
		TickLower: -100,
		TickUpper: 100,
		Timestamp: ts,
		Amount0:   amt(asset0, raw0),
		Amount1:   amt(asset1, raw1),
		GasCost:   model.ZeroAmount(gasAsset()),
	}
}
