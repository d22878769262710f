package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// EventKind is the closed set of liquidity event types.
type EventKind uint8

const (
	KindMint EventKind = iota
	KindBurn
	KindCollect
)

func (k EventKind) String() string {
	switch k {
	case KindMint:
		return "mint"
	case KindBurn:
		return "burn"
	case KindCollect:
		return "collect"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// MarshalJSON encodes the kind as its lowercase name.
func (k EventKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the kind from its lowercase name.
func (k *EventKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "mint":
		*k = KindMint
	case "burn":
		*k = KindBurn
	case "collect":
		*k = KindCollect
	default:
		return fmt.Errorf("unknown event kind %q", name)
	}
	return nil
}

// RawEvent is one on-chain liquidity occurrence as reported by the event
// source. Several raw events can share a transaction id; a Burn immediately
// followed by a Collect in the same transaction is the common case.
type RawEvent struct {
	Kind      EventKind       `json:"kind"`
	TickLower int32           `json:"tick_lower"`
	TickUpper int32           `json:"tick_upper"`
	Timestamp uint64          `json:"timestamp"`
	Amount0   AssetAmount     `json:"amount0"`
	Amount1   AssetAmount     `json:"amount1"`
	TxID      string          `json:"tx_id"`
	GasUsed   decimal.Decimal `json:"gas_used"`
	GasPrice  decimal.Decimal `json:"gas_price"`
}
