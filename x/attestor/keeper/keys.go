package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key prefixes for the attestor module
var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// AttestorKeyPrefix is the prefix for attestor storage
	AttestorKeyPrefix = []byte{0x02}

	// AttestationPrefix indexes who vouches for which geode, keyed by
	// geode then attestor so quorum counts are a single prefix scan
	AttestationPrefix = []byte{0x03}

	// ReportPrefix records misbehavior reports, keyed like attestations
	ReportPrefix = []byte{0x04}
)

// AttestorKey returns the store key for an attestor record
func AttestorKey(attestorID sdk.AccAddress) []byte {
	return append(AttestorKeyPrefix, attestorID.Bytes()...)
}

// AttestationKey returns the store key for one attestor's vouching of one
// geode
func AttestationKey(geodeID, attestorID sdk.AccAddress) []byte {
	key := append(AttestationPrefix, geodeID.Bytes()...)
	return append(key, attestorID.Bytes()...)
}

// AttestationGeodePrefix returns the scan prefix covering all attestations
// of one geode
func AttestationGeodePrefix(geodeID sdk.AccAddress) []byte {
	return append(AttestationPrefix, geodeID.Bytes()...)
}

// ReportKey returns the store key for one attestor's report of one geode
func ReportKey(geodeID, attestorID sdk.AccAddress) []byte {
	key := append(ReportPrefix, geodeID.Bytes()...)
	return append(key, attestorID.Bytes()...)
}

// ReportGeodePrefix returns the scan prefix covering all reports of one
// geode
func ReportGeodePrefix(geodeID sdk.AccAddress) []byte {
	return append(ReportPrefix, geodeID.Bytes()...)
}
