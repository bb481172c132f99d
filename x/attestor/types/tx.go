package types

import (
	"context"
)

// MsgServer is the server API for the attestor Msg service.
type MsgServer interface {
	// RegisterAttestor registers a new verifier.
	RegisterAttestor(ctx context.Context, msg *MsgRegisterAttestor) (*MsgRegisterAttestorResponse, error)

	// UpdateAttestor changes an attestor's endpoint url.
	UpdateAttestor(ctx context.Context, msg *MsgUpdateAttestor) (*MsgUpdateAttestorResponse, error)

	// RemoveAttestor deregisters a verifier and withdraws its attestations.
	RemoveAttestor(ctx context.Context, msg *MsgRemoveAttestor) (*MsgRemoveAttestorResponse, error)

	// AttestorHeartbeat proves the attestor is alive.
	AttestorHeartbeat(ctx context.Context, msg *MsgAttestorHeartbeat) (*MsgAttestorHeartbeatResponse, error)

	// AttestGeode vouches for a geode's health.
	AttestGeode(ctx context.Context, msg *MsgAttestGeode) (*MsgAttestGeodeResponse, error)

	// ReportGeode reports a geode as misbehaving or unreachable.
	ReportGeode(ctx context.Context, msg *MsgReportGeode) (*MsgReportGeodeResponse, error)

	// UpdateParams updates the module parameters. Authority-gated.
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
