package keeper_test

import (
	"encoding/hex"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	"github.com/geodenet/geodenet/x/geode/types"
	ordertypes "github.com/geodenet/geodenet/x/order/types"
)

// dispatchedOrder registers one geode, submits a single-node order, and runs
// the dispatch so the geode ends up pending on the returned order.
func dispatchedOrder(t *testing.T, f *keepertest.MarketplaceFixture, geodeID sdk.AccAddress) string {
	t.Helper()
	requester := testAddr("report_requester")
	f.SeedAccount(t, requester, 0)
	f.FundAccount(t, requester, math.NewInt(10_000), "ugeo")

	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, testAddr("provider"), geodeID, "10.0.0.1", "", nil))
	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)
	f.Order.OnOrdersDispatch(f.Ctx, 1)

	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStatePending, g.Working.State)
	return orderID
}

func TestReportStateGuards(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	geodeID := testAddr("report_guards")

	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, testAddr("provider"), geodeID, "10.0.0.1", "", nil))

	// Idle node has nothing to report on.
	require.ErrorIs(t, f.Geode.GeodeReady(f.Ctx, geodeID, "deadbeef"), types.ErrNotPendingState)
	require.ErrorIs(t, f.Geode.GeodeFinalizing(f.Ctx, geodeID, "deadbeef"), types.ErrNotWorkingState)
	require.ErrorIs(t, f.Geode.GeodeFinalized(f.Ctx, geodeID, "deadbeef"), types.ErrNotFinalizingState)

	require.ErrorIs(t, f.Geode.GeodeReady(f.Ctx, testAddr("ghost"), "deadbeef"), types.ErrNonexistentGeode)
}

func TestReportOrderIdMismatch(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	geodeID := testAddr("report_mismatch")
	dispatchedOrder(t, f, geodeID)

	err := f.Geode.GeodeReady(f.Ctx, geodeID, "0000000000000000000000000000000000000000000000000000000000000000")
	require.ErrorIs(t, err, types.ErrOrderIdNotMatch)
}

func TestInitializeFailedQueuesFailRequest(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	geodeID := testAddr("report_initfail")
	orderID := dispatchedOrder(t, f, geodeID)

	require.NoError(t, f.Geode.GeodeInitializeFailed(f.Ctx, geodeID, orderID))
	require.True(t, f.Geode.HasFailRequest(f.Ctx, geodeID))

	// The node keeps its state until the offline phase reconciles it.
	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStatePending, g.Working.State)

	f.Geode.OnGeodeOffline(f.Ctx, 1)

	g, err = f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStateIdle, g.Working.State)
	require.Empty(t, g.OrderId)
	require.False(t, f.Geode.HasFailRequest(f.Ctx, geodeID))

	// The order lost its only service and went back to needing capacity.
	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, ordertypes.OrderStateEmergency, order.State)
}

func TestFinalizeFailedQueuesFailRequest(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	geodeID := testAddr("report_finfail")
	orderID := dispatchedOrder(t, f, geodeID)

	require.NoError(t, f.Geode.GeodeReady(f.Ctx, geodeID, orderID))
	require.NoError(t, f.Geode.GeodeFinalizing(f.Ctx, geodeID, orderID))
	require.NoError(t, f.Geode.GeodeFinalizeFailed(f.Ctx, geodeID, orderID))
	require.True(t, f.Geode.HasFailRequest(f.Ctx, geodeID))

	f.Geode.OnGeodeOffline(f.Ctx, 1)

	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStateIdle, g.Working.State)
}

func TestSubmitGeodeReport(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)

	priv := ed25519.GenPrivKey()
	geodeID := sdk.AccAddress(priv.PubKey().Address())
	orderID := dispatchedOrder(t, f, geodeID)

	rawOrderID, err := hex.DecodeString(orderID)
	require.NoError(t, err)

	message := append(append([]byte{}, priv.PubKey().Bytes()...), rawOrderID...)
	signature, err := priv.Sign(message)
	require.NoError(t, err)

	require.NoError(t, f.Geode.SubmitGeodeReport(f.Ctx, types.ReportTypeReady, message, signature))

	g, err := f.Geode.GetGeode(f.Ctx, geodeID)
	require.NoError(t, err)
	require.Equal(t, types.GeodeStateWorking, g.Working.State)
}

func TestSubmitGeodeReportRejectsBadInput(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)

	priv := ed25519.GenPrivKey()
	geodeID := sdk.AccAddress(priv.PubKey().Address())
	orderID := dispatchedOrder(t, f, geodeID)

	rawOrderID, err := hex.DecodeString(orderID)
	require.NoError(t, err)
	message := append(append([]byte{}, priv.PubKey().Bytes()...), rawOrderID...)
	signature, err := priv.Sign(message)
	require.NoError(t, err)

	// Wrong length.
	err = f.Geode.SubmitGeodeReport(f.Ctx, types.ReportTypeReady, message[:40], signature)
	require.ErrorIs(t, err, types.ErrInvalidMessage)

	// Signature over a different message.
	tampered := append([]byte{}, message...)
	tampered[40] ^= 0xFF
	err = f.Geode.SubmitGeodeReport(f.Ctx, types.ReportTypeReady, tampered, signature)
	require.ErrorIs(t, err, types.ErrInvalidSignature)

	// Unknown report type.
	err = f.Geode.SubmitGeodeReport(f.Ctx, "rebooted", message, signature)
	require.ErrorIs(t, err, types.ErrInvalidNotification)
}
