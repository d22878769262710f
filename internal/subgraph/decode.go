package subgraph

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"positionScope/internal/model"
)

func decodeEvent(kind model.EventKind, ev poolEvent, pool model.Pool) (model.RawEvent, error) {
	tickLower, err := strconv.ParseInt(ev.TickLower, 10, 32)
	if err != nil {
		return model.RawEvent{}, fmt.Errorf("tick lower %q: %w", ev.TickLower, err)
	}
	tickUpper, err := strconv.ParseInt(ev.TickUpper, 10, 32)
	if err != nil {
		return model.RawEvent{}, fmt.Errorf("tick upper %q: %w", ev.TickUpper, err)
	}
	timestamp, err := strconv.ParseUint(ev.Timestamp, 10, 64)
	if err != nil {
		return model.RawEvent{}, fmt.Errorf("timestamp %q: %w", ev.Timestamp, err)
	}

	amount0, err := scaleAmount(ev.Amount0, pool.Asset0)
	if err != nil {
		return model.RawEvent{}, fmt.Errorf("amount0: %w", err)
	}
	amount1, err := scaleAmount(ev.Amount1, pool.Asset1)
	if err != nil {
		return model.RawEvent{}, fmt.Errorf("amount1: %w", err)
	}

	gasUsed, err := decimal.NewFromString(ev.Transaction.GasUsed)
	if err != nil {
		return model.RawEvent{}, fmt.Errorf("gas used %q: %w", ev.Transaction.GasUsed, err)
	}
	gasPrice, err := decimal.NewFromString(ev.Transaction.GasPrice)
	if err != nil {
		return model.RawEvent{}, fmt.Errorf("gas price %q: %w", ev.Transaction.GasPrice, err)
	}

	return model.RawEvent{
		Kind:      kind,
		TickLower: int32(tickLower),
		TickUpper: int32(tickUpper),
		Timestamp: timestamp,
		Amount0:   amount0,
		Amount1:   amount1,
		TxID:      ev.Transaction.ID,
		GasUsed:   gasUsed,
		GasPrice:  gasPrice,
	}, nil
}

// scaleAmount converts a human-scaled subgraph amount into raw token units,
// rounding fractional base units up.
func scaleAmount(value string, asset model.Asset) (model.AssetAmount, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return model.AssetAmount{}, fmt.Errorf("parse %q: %w", value, err)
	}
	raw := parsed.Mul(asset.DecimalScale()).Ceil()
	return model.NewAmount(asset, raw), nil
}
