package dex

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"positionScope/internal/chain"
	"positionScope/internal/model"
)

const priceDivPrecision = 40

// FetchPool loads an immutable pool snapshot: the asset pair, the fee tier,
// and the spot price derived from slot0.
func FetchPool(ctx context.Context, chainClient *chain.Client, chainID uint64, pool common.Address, cache *AssetCache) (model.Pool, error) {
	if chainClient == nil {
		return model.Pool{}, fmt.Errorf("chain client is nil")
	}

	poolABI, err := V3PoolABI()
	if err != nil {
		return model.Pool{}, fmt.Errorf("parse pool abi: %w", err)
	}

	values, err := callMethod(ctx, chainClient, pool, poolABI, "token0", nil)
	if err != nil {
		return model.Pool{}, err
	}
	token0, err := asAddress(values[0])
	if err != nil {
		return model.Pool{}, fmt.Errorf("token0: %w", err)
	}

	values, err = callMethod(ctx, chainClient, pool, poolABI, "token1", nil)
	if err != nil {
		return model.Pool{}, err
	}
	token1, err := asAddress(values[0])
	if err != nil {
		return model.Pool{}, fmt.Errorf("token1: %w", err)
	}

	values, err = callMethod(ctx, chainClient, pool, poolABI, "fee", nil)
	if err != nil {
		return model.Pool{}, err
	}
	feeInt, err := asBigInt(values[0])
	if err != nil {
		return model.Pool{}, fmt.Errorf("fee: %w", err)
	}

	values, err = callMethod(ctx, chainClient, pool, poolABI, "slot0", nil)
	if err != nil {
		return model.Pool{}, err
	}
	if len(values) < 2 {
		return model.Pool{}, fmt.Errorf("slot0 returned %d values", len(values))
	}
	sqrtPrice, err := asBigInt(values[0])
	if err != nil {
		return model.Pool{}, fmt.Errorf("slot0 sqrt price: %w", err)
	}
	tickInt, err := asBigInt(values[1])
	if err != nil {
		return model.Pool{}, fmt.Errorf("slot0 tick: %w", err)
	}

	asset0, err := FetchAsset(ctx, chainClient, chainID, token0, cache)
	if err != nil {
		return model.Pool{}, fmt.Errorf("asset0: %w", err)
	}
	asset1, err := FetchAsset(ctx, chainClient, chainID, token1, cache)
	if err != nil {
		return model.Pool{}, fmt.Errorf("asset1: %w", err)
	}

	return model.Pool{
		ChainID: chainID,
		Address: pool.Hex(),
		Asset0:  asset0,
		Asset1:  asset1,
		Fee:     uint32(feeInt.Uint64()),
		Tick:    int32(tickInt.Int64()),
		Price:   priceFromSqrtX96(sqrtPrice, asset0.Decimals, asset1.Decimals),
	}, nil
}

// priceFromSqrtX96 converts a Q64.96 sqrt price into the human-scaled amount
// of asset1 per one asset0.
func priceFromSqrtX96(sqrtPrice *big.Int, decimals0, decimals1 uint8) decimal.Decimal {
	if sqrtPrice == nil || sqrtPrice.Sign() == 0 {
		return decimal.Zero
	}
	q96 := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 96), 0)
	ratio := decimal.NewFromBigInt(sqrtPrice, 0).DivRound(q96, priceDivPrecision)
	rawPrice := ratio.Mul(ratio)
	return rawPrice.Mul(decimal.New(1, int32(decimals0)-int32(decimals1)))
}

func asAddress(value interface{}) (common.Address, error) {
	addr, ok := value.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected type %T", value)
	}
	return addr, nil
}

func asBigInt(value interface{}) (*big.Int, error) {
	switch typed := value.(type) {
	case *big.Int:
		return typed, nil
	case uint8:
		return big.NewInt(int64(typed)), nil
	case uint16:
		return big.NewInt(int64(typed)), nil
	case uint32:
		return big.NewInt(int64(typed)), nil
	case uint64:
		return new(big.Int).SetUint64(typed), nil
	default:
		return nil, fmt.Errorf("unexpected type %T", value)
	}
}
