package storage

import "positionScope/internal/model"

// Storage defines a sink for reconciled transactions.
type Storage interface {
	PutTransactions(txs []model.ReconciledTransaction) error
}
