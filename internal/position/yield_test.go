package position

import (
	"testing"

	"positionScope/internal/model"
)

func TestComputeFeeAPYSinglePeriod(t *testing.T) {
	pool := testPool("1")
	base := pool.Asset0

	txs := []model.ReconciledTransaction{
		tx(model.KindMint, "0xa", 0, 100, 0),
		tx(model.KindCollect, "0xb", 100, 0, 10),
	}

	// 10 units of fees on 100 units over 100 seconds is 0.001/s,
	// annualized to 3153600%.
	got, err := ComputeFeeAPY(pool, base, nil, txs, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3153600.00 {
		t.Fatalf("APY %v, want 3153600.00", got)
	}
}

func TestComputeFeeAPYMintsAccumulate(t *testing.T) {
	pool := testPool("1")
	base := pool.Asset0

	txs := []model.ReconciledTransaction{
		tx(model.KindMint, "0xa", 0, 100, 0),
		tx(model.KindMint, "0xb", 50, 50, 0),
		tx(model.KindCollect, "0xc", 100, 15, 0),
	}

	// the denominator is the sum of both mints: 15 on 150 over 100s
	got, err := ComputeFeeAPY(pool, base, nil, txs, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3153600.00 {
		t.Fatalf("APY %v, want 3153600.00", got)
	}
}

func TestComputeFeeAPYPeriodReset(t *testing.T) {
	pool := testPool("1")
	base := pool.Asset0

	txs := []model.ReconciledTransaction{
		tx(model.KindMint, "0xa", 0, 100, 0),
		tx(model.KindBurn, "0xb", 50, 40, 0),
		tx(model.KindCollect, "0xc", 100, 10, 0),
		tx(model.KindCollect, "0xd", 200, 6, 0),
	}

	// First period: 10 on 100 over 100s. Second period starts after the
	// burn is applied: 6 on 60 over 100s. Both samples are 0.001/s.
	got, err := ComputeFeeAPY(pool, base, nil, txs, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3153600.00 {
		t.Fatalf("APY %v, want 3153600.00", got)
	}
}

func TestComputeFeeAPYTrailingUncollected(t *testing.T) {
	pool := testPool("1")
	base := pool.Asset0

	txs := []model.ReconciledTransaction{
		tx(model.KindMint, "0xa", 0, 100, 0),
	}
	uncollected := []model.AssetAmount{amt(base, 10)}

	got, err := ComputeFeeAPY(pool, base, uncollected, txs, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3153600.00 {
		t.Fatalf("APY %v, want 3153600.00", got)
	}
}

func TestComputeFeeAPYDegenerateInterval(t *testing.T) {
	pool := testPool("1")
	base := pool.Asset0

	txs := []model.ReconciledTransaction{
		tx(model.KindMint, "0xa", 100, 100, 0),
		tx(model.KindCollect, "0xb", 100, 0, 10),
	}

	got, err := ComputeFeeAPY(pool, base, nil, txs, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("APY %v, want 0", got)
	}
}

func TestComputeFeeAPYZeroLiquidity(t *testing.T) {
	pool := testPool("1")
	base := pool.Asset0

	txs := []model.ReconciledTransaction{
		tx(model.KindCollect, "0xa", 100, 0, 10),
	}

	got, err := ComputeFeeAPY(pool, base, nil, txs, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("APY %v, want 0", got)
	}
}

func TestComputeFeeAPYEmptyHistory(t *testing.T) {
	pool := testPool("1")

	got, err := ComputeFeeAPY(pool, pool.Asset0, nil, nil, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("APY %v, want 0", got)
	}
}
