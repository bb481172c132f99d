package types

import (
	"context"
)

// MsgServer is the server API for the geode Msg service.
type MsgServer interface {
	// RegisterGeode registers a new compute node under a provider.
	RegisterGeode(ctx context.Context, msg *MsgRegisterGeode) (*MsgRegisterGeodeResponse, error)

	// RemoveGeode requests removal of a node.
	RemoveGeode(ctx context.Context, msg *MsgRemoveGeode) (*MsgRemoveGeodeResponse, error)

	// UpdateGeodeProps sets one property of a node. Owner-only.
	UpdateGeodeProps(ctx context.Context, msg *MsgUpdateGeodeProps) (*MsgUpdateGeodePropsResponse, error)

	// UpdateGeodeDomain changes the domain a node serves. Owner-only.
	UpdateGeodeDomain(ctx context.Context, msg *MsgUpdateGeodeDomain) (*MsgUpdateGeodeDomainResponse, error)

	// GeodeReady confirms the assigned order is running.
	GeodeReady(ctx context.Context, msg *MsgGeodeReady) (*MsgGeodeReadyResponse, error)

	// GeodeFinalizing signals the node started wrapping up its order.
	GeodeFinalizing(ctx context.Context, msg *MsgGeodeFinalizing) (*MsgGeodeFinalizingResponse, error)

	// GeodeFinalized signals the node finished its order.
	GeodeFinalized(ctx context.Context, msg *MsgGeodeFinalized) (*MsgGeodeFinalizedResponse, error)

	// GeodeInitializeFailed records an asynchronous startup failure.
	GeodeInitializeFailed(ctx context.Context, msg *MsgGeodeInitializeFailed) (*MsgGeodeInitializeFailedResponse, error)

	// GeodeFinalizeFailed records an asynchronous teardown failure.
	GeodeFinalizeFailed(ctx context.Context, msg *MsgGeodeFinalizeFailed) (*MsgGeodeFinalizeFailedResponse, error)

	// SubmitGeodeReport verifies a node-signed report and dispatches it to
	// the matching handler.
	SubmitGeodeReport(ctx context.Context, msg *MsgSubmitGeodeReport) (*MsgSubmitGeodeReportResponse, error)

	// UpdateParams updates the module parameters. Authority-gated.
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
