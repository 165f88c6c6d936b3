package types

const (
	// ModuleName defines the module name
	ModuleName = "swap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MaxMemoLength is the maximum accepted memo size in bytes
	MaxMemoLength = 256

	// MaxInheritors is the maximum number of beneficiaries per record
	MaxInheritors = 3

	// ShareScale is the denominator of inheritance shares: shares are
	// expressed in tenths of a percent, 1000 == 100.0%
	ShareScale = 1000

	// FeeScale is the denominator of pool and platform fee rates: rates are
	// expressed in hundredths of a percent, 10000 == 100.00%
	FeeScale = 10000

	// SmallTradeThreshold is the input amount at or below which the platform
	// fee is a flat single unit instead of a rate
	SmallTradeThreshold = 2000
)
