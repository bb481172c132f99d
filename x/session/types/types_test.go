package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geodenet/geodenet/x/session/types"
)

func TestPhaseBlocksTotal(t *testing.T) {
	pb := types.PhaseBlocks{SessionInitialize: 2, GeodeOffline: 3, OrderDispatch: 4, ExpiredCheck: 1}
	require.Equal(t, int64(10), pb.Total())
	require.Equal(t, int64(4), types.DefaultParams().PhaseBlocks.Total())
}

func TestPhaseBlocksLocate(t *testing.T) {
	pb := types.PhaseBlocks{SessionInitialize: 2, GeodeOffline: 3, OrderDispatch: 4, ExpiredCheck: 1}

	cases := []struct {
		residue int64
		want    types.Phase
	}{
		{0, types.PhaseSessionInitialize},
		{1, types.PhaseSessionInitialize},
		{2, types.PhaseGeodeOffline},
		{4, types.PhaseGeodeOffline},
		{5, types.PhaseOrderDispatch},
		{8, types.PhaseOrderDispatch},
		{9, types.PhaseExpiredCheck},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, pb.Locate(tc.residue), "residue %d", tc.residue)
	}
}

func TestPhaseBlocksValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	bad := types.DefaultParams()
	bad.PhaseBlocks.OrderDispatch = 0
	require.Error(t, bad.Validate())

	bad = types.DefaultParams()
	bad.PhaseBlocks.ExpiredCheck = -1
	require.Error(t, bad.Validate())
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	bad := types.DefaultGenesis()
	bad.SessionIndex = -1
	require.Error(t, bad.Validate())
}
