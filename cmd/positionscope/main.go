package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "positionscope",
		Short:        "Concentrated-liquidity position tracker",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute performance metrics for a position history",
		RunE:  runAnalyze,
	}

	addFetchFlags(analyzeCmd)
	analyzeCmd.Flags().String("base", "", "base token address (defaults to token0)")
	analyzeCmd.Flags().String("manager", "", "NFT position manager address (enables on-chain position state)")
	analyzeCmd.Flags().Uint64("token-id", 0, "position NFT token id")
	analyzeCmd.Flags().String("gas-rate", "", "gas currency to base asset rate when the pool cannot convert it")
	analyzeCmd.Flags().String("pg-dsn", "", "Postgres DSN for report persistence")
	analyzeCmd.Flags().String("out", "", "optional JSONL path for the reconciled transactions")

	root.AddCommand(analyzeCmd)

	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Fetch and reconcile the transaction history",
		RunE:  runTransactions,
	}

	addFetchFlags(transactionsCmd)
	transactionsCmd.Flags().String("out", "./data/transactions.jsonl", "output JSONL path")

	root.AddCommand(transactionsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "chain RPC URL")
	cmd.Flags().String("subgraph", "", "V3 subgraph URL")
	cmd.Flags().Uint64("chain-id", 1, "chain id")
	cmd.Flags().String("pool", "", "pool address")
	cmd.Flags().StringSlice("owner", nil, "position owner addresses (comma-separated)")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
