package model

import "time"

// PositionReport is the computed metrics summary for one position history.
// Amount fields are human-scaled decimal strings in the base asset, except
// TotalGasCost which is in the chain's gas currency.
type PositionReport struct {
	ChainID       uint64    `json:"chain_id"`
	PoolAddress   string    `json:"pool_address"`
	Owners        []string  `json:"owners"`
	BaseSymbol    string    `json:"base_symbol"`
	TotalMint     string    `json:"total_mint"`
	TotalBurn     string    `json:"total_burn"`
	TotalCollect  string    `json:"total_collect"`
	TotalGasCost  string    `json:"total_gas_cost"`
	CurrentValue  string    `json:"current_value"`
	ReturnValue   string    `json:"return_value"`
	ReturnPercent float64   `json:"return_percent"`
	APR           float64   `json:"apr"`
	FeeAPY        float64   `json:"fee_apy"`
	Status        string    `json:"status,omitempty"`
	Transactions  int       `json:"transactions"`
	ComputedAt    time.Time `json:"computed_at"`
}
