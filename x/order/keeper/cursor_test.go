package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	"github.com/geodenet/geodenet/x/order/types"
)

func countDone(t *testing.T, f *keepertest.MarketplaceFixture) int {
	t.Helper()
	counts, err := f.Order.CountOrdersByState(f.Ctx)
	require.NoError(t, err)
	return counts[types.OrderStateDone]
}

func TestSweepRespectsLimit(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "sweep_limit", 100_000)

	params, err := f.Order.GetParams(f.Ctx)
	require.NoError(t, err)
	params.SweepLimit = 1
	require.NoError(t, f.Order.SetParams(f.Ctx, params))

	for seq := uint64(0); seq < 3; seq++ {
		f.SeedAccount(t, requester, seq)
		orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(100), 1, 5)
		require.NoError(t, err)
		require.NoError(t, f.Order.CancelOrder(f.Ctx, requester, orderID))
	}

	// One cancel lands per sweep call; the cursor carries progress across
	// calls within the same session.
	f.Order.OnNewSession(f.Ctx, 7)
	require.Equal(t, 1, countDone(t, f))

	f.Order.OnNewSession(f.Ctx, 7)
	require.Equal(t, 2, countDone(t, f))

	f.Order.OnNewSession(f.Ctx, 7)
	require.Equal(t, 3, countDone(t, f))

	// Drained: further sweeps are no-ops.
	f.Order.OnNewSession(f.Ctx, 7)
	require.Equal(t, 3, countDone(t, f))
}

func TestSweepCursorRestartsOnNewSession(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "sweep_restart", 100_000)

	params, err := f.Order.GetParams(f.Ctx)
	require.NoError(t, err)
	params.SweepLimit = 1
	require.NoError(t, f.Order.SetParams(f.Ctx, params))

	for seq := uint64(0); seq < 2; seq++ {
		f.SeedAccount(t, requester, seq)
		orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(100), 1, 5)
		require.NoError(t, err)
		require.NoError(t, f.Order.CancelOrder(f.Ctx, requester, orderID))
	}

	f.Order.OnNewSession(f.Ctx, 7)
	require.Equal(t, 1, countDone(t, f))

	// A new session discards the stale cursor and the sweep restarts from
	// the front of the index; the remaining cancel still lands.
	f.Order.OnNewSession(f.Ctx, 8)
	require.Equal(t, 2, countDone(t, f))
}
