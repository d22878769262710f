package dex

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"positionScope/internal/chain"
	"positionScope/internal/model"
)

// maxUint128 is the collect() sentinel for "everything owed".
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Position is the on-chain state of an NFT-managed liquidity position.
type Position struct {
	TokenID   *big.Int
	TickLower int32
	TickUpper int32
	Liquidity decimal.Decimal
}

// FetchPosition reads positions(tokenId) from the NFT position manager.
func FetchPosition(ctx context.Context, chainClient *chain.Client, manager common.Address, tokenID *big.Int) (Position, error) {
	if chainClient == nil {
		return Position{}, fmt.Errorf("chain client is nil")
	}

	managerABI, err := PositionManagerABI()
	if err != nil {
		return Position{}, fmt.Errorf("parse manager abi: %w", err)
	}

	values, err := callMethod(ctx, chainClient, manager, managerABI, "positions", nil, tokenID)
	if err != nil {
		return Position{}, err
	}
	if len(values) < 8 {
		return Position{}, fmt.Errorf("positions returned %d values", len(values))
	}

	tickLower, err := asBigInt(values[5])
	if err != nil {
		return Position{}, fmt.Errorf("tick lower: %w", err)
	}
	tickUpper, err := asBigInt(values[6])
	if err != nil {
		return Position{}, fmt.Errorf("tick upper: %w", err)
	}
	liquidity, err := asBigInt(values[7])
	if err != nil {
		return Position{}, fmt.Errorf("liquidity: %w", err)
	}

	return Position{
		TokenID:   tokenID,
		TickLower: int32(tickLower.Int64()),
		TickUpper: int32(tickUpper.Int64()),
		Liquidity: decimal.NewFromBigInt(liquidity, 0),
	}, nil
}

// UncollectedFees simulates collect() as the position owner and returns the
// accrued, not-yet-collected fee amounts as the two pool legs.
func UncollectedFees(ctx context.Context, chainClient *chain.Client, manager, owner common.Address, tokenID *big.Int, asset0, asset1 model.Asset) ([]model.AssetAmount, error) {
	if chainClient == nil {
		return nil, fmt.Errorf("chain client is nil")
	}

	managerABI, err := PositionManagerABI()
	if err != nil {
		return nil, fmt.Errorf("parse manager abi: %w", err)
	}

	params := struct {
		TokenId    *big.Int
		Recipient  common.Address
		Amount0Max *big.Int
		Amount1Max *big.Int
	}{
		TokenId:    tokenID,
		Recipient:  owner,
		Amount0Max: maxUint128,
		Amount1Max: maxUint128,
	}

	data, err := managerABI.Pack("collect", params)
	if err != nil {
		return nil, fmt.Errorf("pack collect: %w", err)
	}

	msg := ethereum.CallMsg{From: owner, To: &manager, Data: data}
	resp, err := chainClient.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call collect: %w", err)
	}

	values, err := managerABI.Unpack("collect", resp)
	if err != nil {
		return nil, fmt.Errorf("unpack collect: %w", err)
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("collect returned %d values", len(values))
	}
	amount0, err := asBigInt(values[0])
	if err != nil {
		return nil, fmt.Errorf("collect amount0: %w", err)
	}
	amount1, err := asBigInt(values[1])
	if err != nil {
		return nil, fmt.Errorf("collect amount1: %w", err)
	}

	return []model.AssetAmount{
		model.NewAmount(asset0, decimal.NewFromBigInt(amount0, 0)),
		model.NewAmount(asset1, decimal.NewFromBigInt(amount1, 0)),
	}, nil
}
