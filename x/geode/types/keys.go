package types

const (
	// ModuleName defines the module name
	ModuleName = "geode"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for geode
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_geode"
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}
