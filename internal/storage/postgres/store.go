package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"positionScope/internal/model"
)

// Store provides Postgres persistence for position metrics.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertReport inserts or updates the latest metrics for a position.
func (s *Store) UpsertReport(ctx context.Context, report model.PositionReport) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO position_reports (
			chain_id, pool_address, owners, base_symbol,
			total_mint, total_burn, total_collect, total_gas_cost,
			current_value, return_value, return_percent, apr, fee_apy,
			status, transactions, computed_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,now(),now())
		ON CONFLICT (chain_id, pool_address)
		DO UPDATE SET
			owners = EXCLUDED.owners,
			base_symbol = EXCLUDED.base_symbol,
			total_mint = EXCLUDED.total_mint,
			total_burn = EXCLUDED.total_burn,
			total_collect = EXCLUDED.total_collect,
			total_gas_cost = EXCLUDED.total_gas_cost,
			current_value = EXCLUDED.current_value,
			return_value = EXCLUDED.return_value,
			return_percent = EXCLUDED.return_percent,
			apr = EXCLUDED.apr,
			fee_apy = EXCLUDED.fee_apy,
			status = EXCLUDED.status,
			transactions = EXCLUDED.transactions,
			computed_at = EXCLUDED.computed_at,
			updated_at = now()
	`,
		int64(report.ChainID),
		report.PoolAddress,
		report.Owners,
		report.BaseSymbol,
		report.TotalMint,
		report.TotalBurn,
		report.TotalCollect,
		report.TotalGasCost,
		report.CurrentValue,
		report.ReturnValue,
		report.ReturnPercent,
		report.APR,
		report.FeeAPY,
		report.Status,
		report.Transactions,
		report.ComputedAt,
	)
	return err
}

// UpsertTransactions records the reconciled transaction history.
func (s *Store) UpsertTransactions(ctx context.Context, chainID uint64, poolAddress string, txs []model.ReconciledTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, tx := range txs {
		batch.Queue(`
			INSERT INTO position_transactions (
				chain_id, pool_address, tx_id, type, tick_lower, tick_upper,
				ts, amount0_raw, amount1_raw, gas_cost_raw, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now())
			ON CONFLICT (chain_id, tx_id, type)
			DO UPDATE SET
				tick_lower = EXCLUDED.tick_lower,
				tick_upper = EXCLUDED.tick_upper,
				ts = EXCLUDED.ts,
				amount0_raw = EXCLUDED.amount0_raw,
				amount1_raw = EXCLUDED.amount1_raw,
				gas_cost_raw = EXCLUDED.gas_cost_raw,
				updated_at = now()
		`,
			int64(chainID),
			poolAddress,
			tx.ID,
			tx.Type.String(),
			tx.TickLower,
			tx.TickUpper,
			int64(tx.Timestamp),
			tx.Amount0.Raw.String(),
			tx.Amount1.Raw.String(),
			tx.GasCost.Raw.String(),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range txs {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
