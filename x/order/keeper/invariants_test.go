package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	"github.com/geodenet/geodenet/x/order/keeper"
	"github.com/geodenet/geodenet/x/order/types"
)

func TestInvariantsHoldAcrossLifecycle(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "invariant_run", 100_000)
	geodes := registerGeodes(t, f, 2, "")

	check := func(stage string) {
		msg, broken := keeper.AllInvariants(*f.Order)(f.Ctx)
		require.False(t, broken, "stage %s: %s", stage, msg)
	}

	check("empty")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 2, 5)
	require.NoError(t, err)
	check("submitted")

	f.Order.OnOrdersDispatch(f.Ctx, 1)
	check("dispatched")

	for _, id := range geodes {
		require.NoError(t, f.Geode.GeodeReady(f.Ctx, id, orderID))
	}
	check("processing")

	require.NoError(t, f.Order.OnOrderState(f.Ctx, geodes[0], orderID, types.OrderStateEmergency))
	check("emergency")

	require.NoError(t, f.Order.CancelOrder(f.Ctx, requester, orderID))
	f.Order.OnNewSession(f.Ctx, 2)
	check("done")
}

func TestIndexSymmetryInvariantDetectsDrift(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "invariant_bad", 10_000)

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)

	// Flip the stored state without moving the index row.
	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	order.State = types.OrderStateProcessing
	require.NoError(t, f.Order.SetOrder(f.Ctx, *order))

	_, broken := keeper.OrderIndexSymmetryInvariant(*f.Order)(f.Ctx)
	require.True(t, broken)
}

func TestAggregateInvariantDetectsDrift(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "aggregate_bad", 10_000)
	registerGeodes(t, f, 1, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)
	f.Order.OnOrdersDispatch(f.Ctx, 1)

	// Drop the service list behind the aggregate's back.
	require.NoError(t, f.Order.SetOrderServices(f.Ctx, types.OrderServices{OrderId: orderID, Services: nil}))

	_, broken := keeper.OrderAggregateInvariant(*f.Order)(f.Ctx)
	require.True(t, broken)
}
