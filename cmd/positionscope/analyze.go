package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"positionScope/internal/chain"
	"positionScope/internal/config"
	"positionScope/internal/dex"
	"positionScope/internal/model"
	"positionScope/internal/position"
	"positionScope/internal/storage"
	"positionScope/internal/storage/postgres"
	"positionScope/internal/subgraph"
)

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, txs, gasAsset, err := fetchHistory(ctx, cfg, logger)
	if err != nil {
		return err
	}

	base, err := resolveBase(pool, cfg.BaseToken)
	if err != nil {
		return err
	}

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	currentValue := model.ZeroAmount(base)
	currentLiquidity := decimal.Zero
	var uncollected []model.AssetAmount
	var status string

	if cfg.Manager != "" && cfg.TokenID != 0 {
		manager := common.HexToAddress(cfg.Manager)
		tokenID := new(big.Int).SetUint64(cfg.TokenID)

		pos, err := dex.FetchPosition(ctx, chainClient, manager, tokenID)
		if err != nil {
			return fmt.Errorf("fetch position: %w", err)
		}
		currentLiquidity = pos.Liquidity
		status = position.ComputeStatus(pool.Tick, pos.TickLower, pos.TickUpper, pos.Liquidity).String()

		amount0, amount1 := dex.PositionAmounts(pool, pos)
		currentValue, err = position.QuoteValue(pool, base, amount0, amount1)
		if err != nil {
			return err
		}

		owner := common.HexToAddress(cfg.Owners[0])
		uncollected, err = dex.UncollectedFees(ctx, chainClient, manager, owner, tokenID, pool.Asset0, pool.Asset1)
		if err != nil {
			logger.Warn("uncollected fees unavailable", zap.Error(err))
			uncollected = nil
		}
	}

	totals, err := position.ComputeTotals(txs, base, pool, gasAsset)
	if err != nil {
		return err
	}

	converter, err := pickConverter(pool, base, gasAsset, cfg.GasRate)
	if err != nil {
		return err
	}

	ret, err := position.ComputeReturn(ctx, base, totals, currentValue, converter)
	if err != nil {
		return err
	}

	// metric windows end at chain time, not wall-clock time
	now := uint64(time.Now().Unix())
	if header, err := chainClient.HeaderByNumber(ctx, nil); err == nil {
		now = header.Time
	}
	apr := position.ComputeAPR(txs, ret.Percent, currentLiquidity, now)
	apy, err := position.ComputeFeeAPY(pool, base, uncollected, txs, now)
	if err != nil {
		return err
	}

	report := model.PositionReport{
		ChainID:       cfg.ChainID,
		PoolAddress:   pool.Address,
		Owners:        cfg.Owners,
		BaseSymbol:    base.Symbol,
		TotalMint:     totals.Mint.ToSignificant(8),
		TotalBurn:     totals.Burn.ToSignificant(8),
		TotalCollect:  totals.Collect.ToSignificant(8),
		TotalGasCost:  totals.GasCost.ToSignificant(8),
		CurrentValue:  currentValue.ToSignificant(8),
		ReturnValue:   ret.Value.ToSignificant(8),
		ReturnPercent: ret.Percent,
		APR:           apr,
		FeeAPY:        apy,
		Status:        status,
		Transactions:  len(txs),
		ComputedAt:    time.Now().UTC(),
	}

	logger.Info("analyze complete",
		zap.String("pool", report.PoolAddress),
		zap.String("base", report.BaseSymbol),
		zap.Int("transactions", report.Transactions),
		zap.Float64("return_percent", report.ReturnPercent),
		zap.Float64("apr", report.APR),
		zap.Float64("fee_apy", report.FeeAPY),
	)

	if cfg.Out != "" {
		sink := storage.NewJsonlStorage(cfg.Out)
		if err := sink.PutTransactions(txs); err != nil {
			return err
		}
	}

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		if err := store.UpsertTransactions(ctx, cfg.ChainID, pool.Address, txs); err != nil {
			return fmt.Errorf("store transactions: %w", err)
		}
		if err := store.UpsertReport(ctx, report); err != nil {
			return fmt.Errorf("store report: %w", err)
		}
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	return nil
}

// fetchHistory loads the pool snapshot and the reconciled transaction list.
func fetchHistory(ctx context.Context, cfg config.Config, logger *zap.Logger) (model.Pool, []model.ReconciledTransaction, model.Asset, error) {
	if cfg.RPCURL == "" {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("rpc url is required")
	}
	if cfg.SubgraphURL == "" {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("subgraph url is required")
	}
	if cfg.PoolAddress == "" {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("pool address is required")
	}
	if len(cfg.Owners) == 0 {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("owner list is required")
	}

	gasAsset, err := config.DefaultCurrencyRegistry().GasAsset(cfg.ChainID)
	if err != nil {
		return model.Pool{}, nil, model.Asset{}, err
	}

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	remoteID, err := chainClient.GetChainID(ctx)
	if err != nil {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("chain id: %w", err)
	}
	if remoteID.Uint64() != cfg.ChainID {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("rpc chain id %s does not match configured chain %d", remoteID, cfg.ChainID)
	}

	pool, err := dex.FetchPool(ctx, chainClient, cfg.ChainID, common.HexToAddress(cfg.PoolAddress), dex.NewAssetCache())
	if err != nil {
		return model.Pool{}, nil, model.Asset{}, fmt.Errorf("fetch pool: %w", err)
	}

	sub := subgraph.NewClient(cfg.SubgraphURL, logger)
	mintBurns, err := sub.MintsAndBurns(ctx, cfg.Owners, pool)
	if err != nil {
		return model.Pool{}, nil, model.Asset{}, err
	}
	collects, err := sub.CollectsByTransaction(ctx, subgraph.BurnTransactionIDs(mintBurns), pool)
	if err != nil {
		return model.Pool{}, nil, model.Asset{}, err
	}

	txs := position.Reconcile(mintBurns, collects, gasAsset)

	logger.Info("history fetched",
		zap.String("pool", pool.Address),
		zap.Int("mints_burns", len(mintBurns)),
		zap.Int("collects", len(collects)),
		zap.Int("reconciled", len(txs)),
	)

	return pool, txs, gasAsset, nil
}

func resolveBase(pool model.Pool, baseToken string) (model.Asset, error) {
	switch {
	case baseToken == "" || strings.EqualFold(baseToken, pool.Asset0.Address):
		return pool.Asset0, nil
	case strings.EqualFold(baseToken, pool.Asset1.Address):
		return pool.Asset1, nil
	default:
		return model.Asset{}, fmt.Errorf("base token %s is not a pool asset", baseToken)
	}
}

// pickConverter selects how the gas currency is valued in the base asset:
// through the pool when it holds the gas currency, otherwise through an
// explicit rate.
func pickConverter(pool model.Pool, base, gasAsset model.Asset, gasRate string) (position.Converter, error) {
	if gasAsset.Equal(base) || gasAsset.Equal(pool.Asset0) || gasAsset.Equal(pool.Asset1) {
		return dex.PoolConverter{Pool: pool}, nil
	}
	if gasRate == "" {
		return nil, fmt.Errorf("pool cannot price %s in %s; set --gas-rate", gasAsset.Symbol, base.Symbol)
	}
	rate, err := decimal.NewFromString(gasRate)
	if err != nil {
		return nil, fmt.Errorf("parse gas-rate: %w", err)
	}
	return dex.RateConverter{Rate: rate}, nil
}
