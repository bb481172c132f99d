package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/geodenet/geodenet/x/order/types"
)

func TestOrderStateCheckNext(t *testing.T) {
	cases := []struct {
		from types.OrderState
		to   types.OrderState
		ok   bool
	}{
		{types.OrderStateSubmitted, types.OrderStatePending, true},
		{types.OrderStateSubmitted, types.OrderStateProcessing, false},
		{types.OrderStateSubmitted, types.OrderStateDone, false},
		{types.OrderStatePending, types.OrderStateProcessing, true},
		{types.OrderStatePending, types.OrderStateEmergency, true},
		{types.OrderStatePending, types.OrderStateDone, true},
		{types.OrderStatePending, types.OrderStateSubmitted, false},
		{types.OrderStateProcessing, types.OrderStateEmergency, true},
		{types.OrderStateProcessing, types.OrderStateDone, true},
		{types.OrderStateProcessing, types.OrderStatePending, false},
		{types.OrderStateEmergency, types.OrderStateProcessing, true},
		{types.OrderStateEmergency, types.OrderStateDone, false},
		{types.OrderStateEmergency, types.OrderStatePending, false},
		{types.OrderStateDone, types.OrderStateSubmitted, false},
		{types.OrderStateDone, types.OrderStateProcessing, false},
		{types.OrderStateDone, types.OrderStateDone, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.ok, tc.from.CheckNext(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStateValid(t *testing.T) {
	for _, s := range []types.OrderState{
		types.OrderStateSubmitted, types.OrderStatePending,
		types.OrderStateProcessing, types.OrderStateEmergency, types.OrderStateDone,
	} {
		require.True(t, s.Valid())
	}
	require.False(t, types.OrderState("bogus").Valid())
	require.False(t, types.OrderState("").Valid())
}

func TestCurrentState(t *testing.T) {
	pending := types.OrderService{GeodeId: "g1", State: types.OrderStatePending}
	processing := types.OrderService{GeodeId: "g2", State: types.OrderStateProcessing}
	done := types.OrderService{GeodeId: "g3", State: types.OrderStateDone}

	// Shortfall dominates everything.
	require.Equal(t, types.OrderStateEmergency, types.CurrentState(2, []types.OrderService{processing}))
	require.Equal(t, types.OrderStateEmergency, types.CurrentState(1, nil))

	// Any pending service caps the aggregate at pending.
	require.Equal(t, types.OrderStatePending, types.CurrentState(2, []types.OrderService{pending, processing}))

	// Fully confirmed.
	require.Equal(t, types.OrderStateProcessing, types.CurrentState(2, []types.OrderService{processing, processing}))
	require.Equal(t, types.OrderStateProcessing, types.CurrentState(2, []types.OrderService{processing, done}))
}

func TestAllServicesDone(t *testing.T) {
	require.False(t, types.AllServicesDone(nil))
	require.False(t, types.AllServicesDone([]types.OrderService{
		{GeodeId: "g1", State: types.OrderStateDone},
		{GeodeId: "g2", State: types.OrderStateProcessing},
	}))
	require.True(t, types.AllServicesDone([]types.OrderService{
		{GeodeId: "g1", State: types.OrderStateDone},
		{GeodeId: "g2", State: types.OrderStateDone},
	}))
}

func TestNewOrderId(t *testing.T) {
	addr := sdk.AccAddress([]byte("order_id_test_addr__"))

	id1 := types.NewOrderId(addr, 0)
	id2 := types.NewOrderId(addr, 1)
	other := types.NewOrderId(sdk.AccAddress([]byte("another_test_addr___")), 0)

	require.Len(t, id1, 64)
	require.NotEqual(t, id1, id2)
	require.NotEqual(t, id1, other)
	// Deterministic for the same inputs.
	require.Equal(t, id1, types.NewOrderId(addr, 0))
}

func TestMsgCreateOrderValidateBasic(t *testing.T) {
	addr := sdk.AccAddress([]byte("msg_validate_addr___")).String()

	valid := types.MsgCreateOrder{
		Requester: addr,
		Binary:    "registry.example.com/workload:v1",
		Num:       1,
		Duration:  10,
		Price:     math.NewInt(1000),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Requester = "not-an-address"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Num = 0
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Duration = 0
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Binary = ""
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Price = math.NewInt(0)
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Price = math.Int{}
	require.Error(t, bad.ValidateBasic())
}
