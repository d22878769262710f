package model

// ReconciledTransaction is one logical user action derived from raw events
// sharing a transaction id. For a Collect paired with a liquidity-changing
// Burn the amounts are already net of the burned principal and the gas cost
// is zero (attributed to the Burn).
type ReconciledTransaction struct {
	ID        string      `json:"id"`
	Type      EventKind   `json:"type"`
	TickLower int32       `json:"tick_lower"`
	TickUpper int32       `json:"tick_upper"`
	Timestamp uint64      `json:"timestamp"`
	Amount0   AssetAmount `json:"amount0"`
	Amount1   AssetAmount `json:"amount1"`
	// GasCost is valued in the chain's designated gas currency.
	GasCost AssetAmount `json:"gas_cost"`
}
