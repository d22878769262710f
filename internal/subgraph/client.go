package subgraph

import (
	"context"
	"fmt"
	"strings"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"positionScope/internal/model"
)

const queryMintsBurns = `
  query mints_burns($origins: [String]!, $poolAddress: String!) {
    mints(where: { origin_in: $origins, pool: $poolAddress }) {
      tickLower
      tickUpper
      timestamp
      amount0
      amount1
      transaction {
        id
        gasUsed
        gasPrice
      }
    }

    burns(where: { origin_in: $origins, pool: $poolAddress }) {
      tickLower
      tickUpper
      timestamp
      amount0
      amount1
      transaction {
        id
        gasUsed
        gasPrice
      }
    }
  }
`

const queryCollects = `
  query collectsByTransactions($ids: [String]!) {
    collects(where: { transaction_in: $ids }) {
      tickLower
      tickUpper
      timestamp
      amount0
      amount1
      transaction {
        id
        gasUsed
        gasPrice
      }
    }
  }
`

// Client fetches position events from a V3 subgraph.
type Client struct {
	gql    *graphql.Client
	logger *zap.Logger
}

func NewClient(url string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{gql: graphql.NewClient(url), logger: logger}
}

// MintsAndBurns returns the raw mint and burn events originated by the
// owners for one pool. Events that fail to decode are skipped with a
// warning.
func (c *Client) MintsAndBurns(ctx context.Context, owners []string, pool model.Pool) ([]model.RawEvent, error) {
	req := graphql.NewRequest(queryMintsBurns)
	req.Var("origins", lowercase(owners))
	req.Var("poolAddress", strings.ToLower(pool.Address))

	var resp struct {
		Mints []poolEvent `json:"mints"`
		Burns []poolEvent `json:"burns"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("query mints/burns: %w", err)
	}

	events := make([]model.RawEvent, 0, len(resp.Mints)+len(resp.Burns))
	for _, ev := range resp.Mints {
		decoded, err := decodeEvent(model.KindMint, ev, pool)
		if err != nil {
			c.logger.Warn("decode mint", zap.String("tx", ev.Transaction.ID), zap.Error(err))
			continue
		}
		events = append(events, decoded)
	}
	for _, ev := range resp.Burns {
		decoded, err := decodeEvent(model.KindBurn, ev, pool)
		if err != nil {
			c.logger.Warn("decode burn", zap.String("tx", ev.Transaction.ID), zap.Error(err))
			continue
		}
		events = append(events, decoded)
	}
	return events, nil
}

// CollectsByTransaction returns the collect events paired with the given
// transaction ids.
func (c *Client) CollectsByTransaction(ctx context.Context, ids []string, pool model.Pool) ([]model.RawEvent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	req := graphql.NewRequest(queryCollects)
	req.Var("ids", ids)

	var resp struct {
		Collects []poolEvent `json:"collects"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("query collects: %w", err)
	}

	events := make([]model.RawEvent, 0, len(resp.Collects))
	for _, ev := range resp.Collects {
		decoded, err := decodeEvent(model.KindCollect, ev, pool)
		if err != nil {
			c.logger.Warn("decode collect", zap.String("tx", ev.Transaction.ID), zap.Error(err))
			continue
		}
		events = append(events, decoded)
	}
	return events, nil
}

// BurnTransactionIDs extracts the distinct transaction ids of burn events,
// used to look up their paired collects.
func BurnTransactionIDs(events []model.RawEvent) []string {
	seen := make(map[string]struct{}, len(events))
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Kind != model.KindBurn {
			continue
		}
		if _, ok := seen[ev.TxID]; ok {
			continue
		}
		seen[ev.TxID] = struct{}{}
		ids = append(ids, ev.TxID)
	}
	return ids
}

func lowercase(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToLower(item))
	}
	return out
}
