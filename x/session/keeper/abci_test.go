package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	geodetypes "github.com/geodenet/geodenet/x/geode/types"
	ordertypes "github.com/geodenet/geodenet/x/order/types"
)

func testAddr(name string) sdk.AccAddress {
	return sdk.AccAddress([]byte(name + "____________________")[:20])
}

func TestSessionRollover(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	require.Equal(t, int64(0), f.Session.GetSessionIndex(f.Ctx))

	// Default cycle is four blocks, one per phase. A zero residue rolls the
	// session over.
	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(0)))
	require.Equal(t, int64(1), f.Session.GetSessionIndex(f.Ctx))

	for h := int64(1); h < 4; h++ {
		require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(h)))
		require.Equal(t, int64(1), f.Session.GetSessionIndex(f.Ctx))
	}

	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(4)))
	require.Equal(t, int64(2), f.Session.GetSessionIndex(f.Ctx))
}

func TestSessionCycleDrivesMarketplace(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	provider := testAddr("cycle_provider")
	geodeID := testAddr("cycle_geode")
	requester := testAddr("cycle_requester")
	f.SeedAccount(t, requester, 0)
	f.FundAccount(t, requester, math.NewInt(10_000), "ugeo")

	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, provider, geodeID, "10.0.0.1", "", nil))
	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)

	// Initialize and offline phases leave a fresh submission untouched.
	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(0)))
	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(1)))
	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, ordertypes.OrderStateSubmitted, order.State)

	// The dispatch phase assigns the idle geode.
	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(2)))
	order, err = f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, ordertypes.OrderStatePending, order.State)

	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, geodetypes.GeodeStatePending, g.Working.State)
	require.Equal(t, orderID, g.OrderId)

	// Expired check of session 1 is within the order's window.
	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(3)))
	g, err = f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, geodetypes.GeodeStatePending, g.Working.State)
}

func TestSessionInitializeSweepsExits(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	provider := testAddr("exit_provider")
	geodeID := testAddr("exit_geode")

	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, provider, geodeID, "10.0.0.1", "", nil))
	require.NoError(t, f.Geode.RemoveGeode(f.Ctx, provider, geodeID))

	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(0)))
	require.False(t, f.Geode.HasGeode(f.Ctx, geodeID))
}

func TestSessionGenesisRoundTrip(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)

	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(0)))
	require.NoError(t, f.Session.BeginBlocker(f.Ctx.WithBlockHeight(4)))

	state, err := f.Session.ExportGenesis(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), state.SessionIndex)

	f2 := keepertest.NewMarketplaceFixture(t)
	require.NoError(t, f2.Session.InitGenesis(f2.Ctx, *state))
	require.Equal(t, int64(2), f2.Session.GetSessionIndex(f2.Ctx))
}

func TestUpdatePhaseBlocksAuthority(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)

	params, err := f.Session.GetParams(f.Ctx)
	require.NoError(t, err)
	params.PhaseBlocks.OrderDispatch = 3
	require.NoError(t, f.Session.SetParams(f.Ctx, params))

	got, err := f.Session.GetParams(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.PhaseBlocks.OrderDispatch)
	require.Equal(t, int64(6), got.PhaseBlocks.Total())

	// A six block cycle: dispatch now spans residues 2..4.
	require.Equal(t, "order_dispatch", string(got.PhaseBlocks.Locate(4)))
}
