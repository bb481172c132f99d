package keeper

// Store key prefixes for the session module
var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// SessionIndexKey is the key for the current session index
	SessionIndexKey = []byte{0x02}
)
