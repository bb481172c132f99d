package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	"github.com/geodenet/geodenet/x/geode/types"
)

func testAddr(name string) sdk.AccAddress {
	return sdk.AccAddress([]byte(name + "____________________")[:20])
}

func TestRegisterGeode(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	provider := testAddr("provider")
	geodeID := testAddr("register_ok")

	err := f.Geode.RegisterGeode(f.Ctx, provider, geodeID, "10.1.2.3", "eu", map[string]string{"gpu": "h100"})
	require.NoError(t, err)

	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, geodeID.String(), g.Id)
	require.Equal(t, provider.String(), g.Provider)
	require.Equal(t, "10.1.2.3", g.Ip)
	require.Equal(t, "eu", g.Domain)
	require.Equal(t, "h100", g.Props["gpu"])
	require.Equal(t, types.GeodeStateIdle, g.Working.State)
	// No attestors registered: abnormal mode seeds new nodes healthy.
	require.Equal(t, types.HealthyStateHealthy, g.Healthy)

	idle, err := f.Geode.GetGeodesByState(f.Ctx, types.GeodeStateIdle)
	require.NoError(t, err)
	require.Len(t, idle, 1)

	err = f.Geode.RegisterGeode(f.Ctx, provider, geodeID, "10.1.2.3", "eu", nil)
	require.ErrorIs(t, err, types.ErrDuplicateGeodeId)
}

func TestRemoveIdleGeode(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	provider := testAddr("provider")
	geodeID := testAddr("remove_idle")

	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, provider, geodeID, "10.0.0.1", "", nil))

	// Wrong owner is rejected.
	err := f.Geode.RemoveGeode(f.Ctx, testAddr("intruder"), geodeID)
	require.ErrorIs(t, err, types.ErrNotOwner)

	require.NoError(t, f.Geode.RemoveGeode(f.Ctx, provider, geodeID))

	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStateExiting, g.Working.State)

	// The record is gone after the next session boundary.
	f.Geode.OnNewSession(f.Ctx, 2)
	require.False(t, f.Geode.HasGeode(f.Ctx, geodeID))
}

func TestRemoveBusyGeodeQueuesOffline(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	provider := testAddr("provider")
	geodeID := testAddr("remove_busy")
	requester := testAddr("busy_requester")
	f.SeedAccount(t, requester, 0)
	f.FundAccount(t, requester, math.NewInt(10_000), "ugeo")

	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, provider, geodeID, "10.0.0.1", "", nil))
	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)
	f.Order.OnOrdersDispatch(f.Ctx, 1)

	require.NoError(t, f.Geode.RemoveGeode(f.Ctx, provider, geodeID))
	require.True(t, f.Geode.HasOfflineRequest(f.Ctx, geodeID))

	// The request stays queued while the node serves its order.
	f.Geode.OnGeodeOffline(f.Ctx, 1)
	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStatePending, g.Working.State)
	require.True(t, f.Geode.HasOfflineRequest(f.Ctx, geodeID))

	// Once the order releases the node, the next offline phase honors it.
	require.NoError(t, f.Geode.GeodeReady(f.Ctx, geodeID, orderID))
	require.NoError(t, f.Geode.GeodeFinalizing(f.Ctx, geodeID, orderID))
	require.NoError(t, f.Geode.GeodeFinalized(f.Ctx, geodeID, orderID))

	f.Geode.OnGeodeOffline(f.Ctx, 2)
	g, err = f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStateExiting, g.Working.State)
	require.False(t, f.Geode.HasOfflineRequest(f.Ctx, geodeID))
}

func TestUpdateGeode(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	provider := testAddr("provider")
	geodeID := testAddr("update_geode")

	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, provider, geodeID, "10.0.0.1", "eu", nil))

	require.NoError(t, f.Geode.UpdateGeodeProps(f.Ctx, provider, geodeID, "tee", "sev-snp"))
	require.NoError(t, f.Geode.UpdateGeodeDomain(f.Ctx, provider, geodeID, "us"))

	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, "sev-snp", g.Props["tee"])
	require.Equal(t, "us", g.Domain)

	err = f.Geode.UpdateGeodeProps(f.Ctx, testAddr("intruder"), geodeID, "k", "v")
	require.ErrorIs(t, err, types.ErrNotOwner)
	err = f.Geode.UpdateGeodeDomain(f.Ctx, testAddr("intruder"), geodeID, "ap")
	require.ErrorIs(t, err, types.ErrNotOwner)
}
