package dex

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"positionScope/internal/chain"
	"positionScope/internal/model"
)

// AssetCache caches token metadata by address.
type AssetCache struct {
	mu   sync.RWMutex
	data map[common.Address]model.Asset
}

func NewAssetCache() *AssetCache {
	return &AssetCache{data: make(map[common.Address]model.Asset)}
}

func (c *AssetCache) Get(address common.Address) (model.Asset, bool) {
	c.mu.RLock()
	asset, ok := c.data[address]
	c.mu.RUnlock()
	return asset, ok
}

func (c *AssetCache) Set(address common.Address, asset model.Asset) {
	c.mu.Lock()
	c.data[address] = asset
	c.mu.Unlock()
}

// FetchAsset loads ERC20 metadata for a token via chain RPC.
func FetchAsset(ctx context.Context, chainClient *chain.Client, chainID uint64, token common.Address, cache *AssetCache) (model.Asset, error) {
	if chainClient == nil {
		return model.Asset{}, fmt.Errorf("chain client is nil")
	}
	if cache != nil {
		if asset, ok := cache.Get(token); ok {
			return asset, nil
		}
	}

	erc20, err := ERC20ABI()
	if err != nil {
		return model.Asset{}, fmt.Errorf("parse erc20 abi: %w", err)
	}

	values, err := callMethod(ctx, chainClient, token, erc20, "decimals", nil)
	if err != nil {
		return model.Asset{}, fmt.Errorf("decimals: %w", err)
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return model.Asset{}, fmt.Errorf("decimals unexpected type %T", values[0])
	}

	symbol := token.Hex()[:8]
	if values, err := callMethod(ctx, chainClient, token, erc20, "symbol", nil); err == nil {
		if s, ok := values[0].(string); ok && s != "" {
			symbol = s
		}
	}

	asset := model.Asset{
		ChainID:  chainID,
		Address:  token.Hex(),
		Symbol:   symbol,
		Decimals: decimals,
	}
	if cache != nil {
		cache.Set(token, asset)
	}
	return asset, nil
}

func callMethod(ctx context.Context, chainClient *chain.Client, to common.Address, parsed abi.ABI, method string, block *big.Int, args ...interface{}) ([]interface{}, error) {
	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	msg := ethereum.CallMsg{To: &to, Data: data}
	resp, err := chainClient.CallContract(ctx, msg, block)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	values, err := parsed.Unpack(method, resp)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return values, nil
}
