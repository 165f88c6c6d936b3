package types

import (
	"cosmossdk.io/errors"
)

// Swap module sentinel errors
var (
	ErrUnauthorized       = errors.Register(ModuleName, 1, "unauthorized")
	ErrInvalidAccount     = errors.Register(ModuleName, 2, "invalid account")
	ErrInvalidSymbol      = errors.Register(ModuleName, 3, "invalid symbol")
	ErrInvalidAsset       = errors.Register(ModuleName, 4, "invalid asset")
	ErrInvalidAmount      = errors.Register(ModuleName, 5, "amount must be positive")
	ErrPrecisionMismatch  = errors.Register(ModuleName, 6, "symbol precision mismatch")
	ErrMemoTooLong        = errors.Register(ModuleName, 7, "memo has more than 256 bytes")
	ErrInvalidMemo        = errors.Register(ModuleName, 8, "invalid memo")
	ErrBalanceNotFound    = errors.Register(ModuleName, 9, "no balance object found")
	ErrBalanceExists      = errors.Register(ModuleName, 10, "balance already exists")
	ErrBalanceNotZero     = errors.Register(ModuleName, 11, "cannot close non-zero balance")
	ErrOverdrawnBalance   = errors.Register(ModuleName, 12, "overdrawn balance")
	ErrTokenNotFound      = errors.Register(ModuleName, 13, "token with symbol does not exist")
	ErrTokenExists        = errors.Register(ModuleName, 14, "token with symbol already exists")
	ErrInvalidSupply      = errors.Register(ModuleName, 15, "invalid token supply")
	ErrSupplyExceeded     = errors.Register(ModuleName, 16, "quantity exceeds available supply")
	ErrPoolNotFound       = errors.Register(ModuleName, 17, "pool does not exist")
	ErrPoolExists         = errors.Register(ModuleName, 18, "pool already exists")
	ErrPoolNotEmpty       = errors.Register(ModuleName, 19, "pool reserves or liquidity supply not zero")
	ErrInvalidPool        = errors.Register(ModuleName, 20, "invalid pool state")
	ErrPoolMismatch       = errors.Register(ModuleName, 21, "pool does not match tokens")
	ErrOverdrawnReserve   = errors.Register(ModuleName, 22, "overdrawn pool reserve")
	ErrMinSwapAmount      = errors.Register(ModuleName, 23, "amount below minimum swap amount")
	ErrSlippageExceeded   = errors.Register(ModuleName, 24, "amount out less than minimum required")
	ErrAccountNotOpen     = errors.Register(ModuleName, 25, "account balance for token is not open")
	ErrInvalidDeposit     = errors.Register(ModuleName, 26, "invalid deposit pair")
	ErrInheritanceNotFound = errors.Register(ModuleName, 27, "inheritance record not found")
	ErrInheritanceNotExpired = errors.Register(ModuleName, 28, "inheritance date is not expired")
	ErrInvalidInheritors  = errors.Register(ModuleName, 29, "invalid inheritors")
	ErrInvalidInactivePeriod = errors.Register(ModuleName, 30, "invalid inactive period")
	ErrInvalidGenesis     = errors.Register(ModuleName, 31, "invalid genesis state")
)
