package keeper

import (
	"context"
	"fmt"

	"github.com/geodenet/geodenet/x/order/types"
)

// InitGenesis initializes the order module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	for _, order := range data.Orders {
		if err := k.SetOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to initialize order %s: %w", order.OrderId, err)
		}
		if prefix := orderIndexPrefix(order.State); prefix != nil {
			store.Set(OrderIndexKey(prefix, order.OrderId), []byte{})
		}
	}

	for _, svcs := range data.Services {
		if err := k.SetOrderServices(ctx, svcs); err != nil {
			return fmt.Errorf("failed to initialize services of order %s: %w", svcs.OrderId, err)
		}
	}

	// Orders without an exported service list still need an empty one so
	// dispatch can append to it.
	for _, order := range data.Orders {
		if _, err := k.GetOrderServices(ctx, order.OrderId); err != nil {
			if err := k.SetOrderServices(ctx, types.OrderServices{OrderId: order.OrderId, Services: []types.OrderService{}}); err != nil {
				return fmt.Errorf("failed to seed services of order %s: %w", order.OrderId, err)
			}
		}
	}

	return nil
}

// ExportGenesis exports the order module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	genesis := types.GenesisState{
		Params:   params,
		Orders:   []types.Order{},
		Services: []types.OrderServices{},
	}

	err = k.IterateOrders(ctx, func(order types.Order) (bool, error) {
		genesis.Orders = append(genesis.Orders, order)
		svcs, err := k.GetOrderServices(ctx, order.OrderId)
		if err == nil && len(svcs.Services) > 0 {
			genesis.Services = append(genesis.Services, svcs)
		}
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export orders: %w", err)
	}

	return &genesis, nil
}
