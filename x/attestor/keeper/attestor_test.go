package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	"github.com/geodenet/geodenet/x/attestor/types"
)

func testAddr(name string) sdk.AccAddress {
	return sdk.AccAddress([]byte(name + "____________________")[:20])
}

func fundAttestor(t *testing.T, f *keepertest.MarketplaceFixture, name string) sdk.AccAddress {
	t.Helper()
	addr := testAddr(name)
	f.FundAccount(t, addr, math.NewInt(1_000_000), "ugeo")
	return addr
}

func TestRegisterAttestor(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	pubkey := bytes.Repeat([]byte{0x01}, 32)

	// Below the minimum stake the registration is refused.
	poor := testAddr("attestor_poor")
	f.FundAccount(t, poor, math.NewInt(999), "ugeo")
	err := f.Attestor.RegisterAttestor(f.Ctx, poor, "https://attestor.example.com", pubkey)
	require.ErrorIs(t, err, types.ErrInsufficientStake)

	attestorID := fundAttestor(t, f, "attestor_ok")
	require.NoError(t, f.Attestor.RegisterAttestor(f.Ctx, attestorID, "https://attestor.example.com", pubkey))

	a, err := f.Attestor.GetAttestor(f.Ctx, attestorID)
	require.NoError(t, err)
	require.Equal(t, "https://attestor.example.com", a.Url)
	require.Equal(t, pubkey, a.Pubkey)
	require.Equal(t, f.Ctx.BlockHeight(), a.LastHeartbeat)
	require.Empty(t, a.Geodes)
	require.Equal(t, uint32(1), f.Attestor.CountAttestors(f.Ctx))

	err = f.Attestor.RegisterAttestor(f.Ctx, attestorID, "https://other.example.com", pubkey)
	require.ErrorIs(t, err, types.ErrDuplicateAttestor)
}

func TestUpdateAndHeartbeat(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	attestorID := fundAttestor(t, f, "attestor_hb")
	require.NoError(t, f.Attestor.RegisterAttestor(f.Ctx, attestorID, "https://a.example.com", nil))

	require.NoError(t, f.Attestor.UpdateAttestor(f.Ctx, attestorID, "https://b.example.com"))

	ctx := f.Ctx.WithBlockHeight(42)
	require.NoError(t, f.Attestor.Heartbeat(ctx, attestorID))

	a, err := f.Attestor.GetAttestor(f.Ctx, attestorID)
	require.NoError(t, err)
	require.Equal(t, "https://b.example.com", a.Url)
	require.Equal(t, int64(42), a.LastHeartbeat)

	ghost := testAddr("attestor_ghost")
	require.ErrorIs(t, f.Attestor.Heartbeat(f.Ctx, ghost), types.ErrNonexistentAttestor)
	require.ErrorIs(t, f.Attestor.UpdateAttestor(f.Ctx, ghost, "https://x"), types.ErrNonexistentAttestor)
}

func TestAbnormalMode(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)

	// Below the attestor quorum the registry runs in abnormal mode and
	// health checks are moot.
	require.True(t, f.Attestor.IsAbnormalMode(f.Ctx))

	attestorID := fundAttestor(t, f, "attestor_mode")
	require.NoError(t, f.Attestor.RegisterAttestor(f.Ctx, attestorID, "https://a.example.com", nil))
	require.False(t, f.Attestor.IsAbnormalMode(f.Ctx))
}

func TestAttestorGenesisRoundTrip(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	attestorID := fundAttestor(t, f, "attestor_gen")
	require.NoError(t, f.Attestor.RegisterAttestor(f.Ctx, attestorID, "https://a.example.com", nil))
	require.NoError(t, f.Geode.RegisterGeode(f.Ctx, testAddr("provider"), testAddr("gen_geode"), "10.0.0.1", "", nil))
	require.NoError(t, f.Attestor.AttestGeode(f.Ctx, attestorID, testAddr("gen_geode")))

	state, err := f.Attestor.ExportGenesis(f.Ctx)
	require.NoError(t, err)
	require.Len(t, state.Attestors, 1)
	require.Len(t, state.Attestors[0].Geodes, 1)

	f2 := keepertest.NewMarketplaceFixture(t)
	require.NoError(t, f2.Attestor.InitGenesis(f2.Ctx, *state))
	require.Equal(t, uint32(1), f2.Attestor.CountAttestors(f2.Ctx))
	require.Equal(t, uint32(1), f2.Attestor.AttestationCount(f2.Ctx, testAddr("gen_geode")))
}
