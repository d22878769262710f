package subgraph

// transactionRef is the owning transaction of an indexed event. The graph
// reports the gas limit in gasUsed.
type transactionRef struct {
	ID       string `json:"id"`
	GasUsed  string `json:"gasUsed"`
	GasPrice string `json:"gasPrice"`
}

// poolEvent is the indexed representation shared by mints, burns, and
// collects. Amounts are human-scaled decimal strings.
type poolEvent struct {
	TickLower   string         `json:"tickLower"`
	TickUpper   string         `json:"tickUpper"`
	Timestamp   string         `json:"timestamp"`
	Amount0     string         `json:"amount0"`
	Amount1     string         `json:"amount1"`
	Transaction transactionRef `json:"transaction"`
}
