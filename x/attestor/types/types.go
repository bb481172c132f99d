package types

// Attestor is one registered verifier. Attestors watch assigned geodes and
// vouch for their health; their own liveness is proven by heartbeats.
type Attestor struct {
	// Id is the attestor account, bech32-encoded.
	Id string `json:"id"`
	// Url is the endpoint geodes use to reach the attestor.
	Url string `json:"url"`
	// Pubkey is the attestor's off-chain signing key.
	Pubkey []byte `json:"pubkey"`
	// LastHeartbeat is the block height of the latest heartbeat.
	LastHeartbeat int64 `json:"last_heartbeat"`
	// Geodes lists the geode addresses this attestor currently attests.
	Geodes []string `json:"geodes"`
}

// HasGeode reports whether the attestor currently attests the given geode.
func (a Attestor) HasGeode(geodeID string) bool {
	for _, id := range a.Geodes {
		if id == geodeID {
			return true
		}
	}
	return false
}
