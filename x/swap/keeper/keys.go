package keeper

import (
	"encoding/binary"
)

var (
	// BalanceKeyPrefix is the prefix for per-owner balance rows
	BalanceKeyPrefix = []byte{0x01}

	// TokenStatKeyPrefix is the prefix for token stat rows
	TokenStatKeyPrefix = []byte{0x02}

	// PoolKeyPrefix is the prefix for pool rows keyed by id
	PoolKeyPrefix = []byte{0x03}

	// PoolCountKey is the key for the next pool id counter
	PoolCountKey = []byte{0x04}

	// PoolByCodeKeyPrefix indexes pools by their liquidity token code
	PoolByCodeKeyPrefix = []byte{0x05}

	// PoolByPairKeyPrefix indexes pools by their token pair hash
	PoolByPairKeyPrefix = []byte{0x06}

	// InheritanceKeyPrefix is the prefix for inheritance records keyed by owner
	InheritanceKeyPrefix = []byte{0x07}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x08}
)

// BalanceKey returns the store key for one (owner, token code) balance row.
// Account names never contain "/", so the separator is unambiguous.
func BalanceKey(owner, code string) []byte {
	key := append([]byte{}, BalanceKeyPrefix...)
	key = append(key, []byte(owner)...)
	key = append(key, '/')
	return append(key, []byte(code)...)
}

// BalancesByOwnerPrefix returns the iteration prefix covering all balance
// rows of one owner.
func BalancesByOwnerPrefix(owner string) []byte {
	key := append([]byte{}, BalanceKeyPrefix...)
	key = append(key, []byte(owner)...)
	return append(key, '/')
}

// TokenStatKey returns the store key for a token stat row.
func TokenStatKey(code string) []byte {
	return append(append([]byte{}, TokenStatKeyPrefix...), []byte(code)...)
}

// PoolKey returns the store key for a pool by id.
func PoolKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(append([]byte{}, PoolKeyPrefix...), bz...)
}

// PoolByCodeKey returns the index key mapping a liquidity token code to its
// pool id.
func PoolByCodeKey(code string) []byte {
	return append(append([]byte{}, PoolByCodeKeyPrefix...), []byte(code)...)
}

// PoolByPairKey returns the index key mapping an ordered pair hash to its
// pool id.
func PoolByPairKey(pairHash string) []byte {
	return append(append([]byte{}, PoolByPairKeyPrefix...), []byte(pairHash)...)
}

// InheritanceKey returns the store key for an owner's inheritance record.
func InheritanceKey(owner string) []byte {
	return append(append([]byte{}, InheritanceKeyPrefix...), []byte(owner)...)
}
