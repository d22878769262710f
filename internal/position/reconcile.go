package position

import (
	"sort"

	"positionScope/internal/model"
)

type pendingTx struct {
	tx      model.ReconciledTransaction
	dropped bool
}

// Reconcile merges raw mint/burn events and their paired collect events into
// a de-duplicated transaction list sorted ascending by timestamp. Events are
// folded mints first, then burns, then collects, matching entries by
// transaction id. Malformed pairings are tolerated: an unmatched Collect
// stays an independent transaction.
//
// Gas costs are computed as gasUsed*gasPrice and valued in gasAsset.
func Reconcile(mintBurns, collects []model.RawEvent, gasAsset model.Asset) []model.ReconciledTransaction {
	pending := make([]*pendingTx, 0, len(mintBurns)+len(collects))
	byID := make(map[string]*pendingTx, len(mintBurns))

	process := func(ev model.RawEvent) {
		tx := provisional(ev, gasAsset)

		prev, matched := byID[tx.ID]
		if !matched {
			entry := &pendingTx{tx: tx}
			pending = append(pending, entry)
			byID[tx.ID] = entry
			return
		}

		// A matched zero-liquidity Burn exists only to emit fees and
		// carries no liquidity information: remove it. The new event is
		// still evaluated against this original match below, so a paired
		// Collect keeps its raw amounts but loses its gas cost.
		if prev.tx.Amount0.IsZero() && prev.tx.Amount1.IsZero() {
			prev.dropped = true
			delete(byID, tx.ID)
		}

		switch {
		case tx.Type == model.KindBurn && tx.Amount0.IsZero() && tx.Amount1.IsZero():
			// empty burn; the collect that follows supplies the true record
			return
		case tx.Type == model.KindCollect:
			// same on-chain action as the matched burn: the gas was already
			// attributed there, and the burned principal comes off the
			// collect so it reflects fees only
			tx.GasCost = model.ZeroAmount(gasAsset)
			tx.Amount0.Raw = tx.Amount0.Raw.Sub(prev.tx.Amount0.Raw)
			tx.Amount1.Raw = tx.Amount1.Raw.Sub(prev.tx.Amount1.Raw)
		}
		pending = append(pending, &pendingTx{tx: tx})
	}

	for _, ev := range mintBurns {
		if ev.Kind == model.KindMint {
			process(ev)
		}
	}
	for _, ev := range mintBurns {
		if ev.Kind == model.KindBurn {
			process(ev)
		}
	}
	for _, ev := range collects {
		process(ev)
	}

	out := make([]model.ReconciledTransaction, 0, len(pending))
	for _, entry := range pending {
		if entry.dropped {
			continue
		}
		// a zero-liquidity burn that never met its collect carries no
		// liquidity information either
		if entry.tx.Type == model.KindBurn && entry.tx.Amount0.IsZero() && entry.tx.Amount1.IsZero() {
			continue
		}
		out = append(out, entry.tx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}

func provisional(ev model.RawEvent, gasAsset model.Asset) model.ReconciledTransaction {
	cost := ev.GasUsed.Mul(ev.GasPrice)

	return model.ReconciledTransaction{
		ID:        ev.TxID,
		Type:      ev.Kind,
		TickLower: ev.TickLower,
		TickUpper: ev.TickUpper,
		Timestamp: ev.Timestamp,
		Amount0:   ev.Amount0,
		Amount1:   ev.Amount1,
		GasCost:   model.NewAmount(gasAsset, cost),
	}
}
