package types

import (
	"cosmossdk.io/math"
)

// Default parameter values, matching the production deployment constants.
const (
	DefaultFeeReceiver = "sw.pcash"

	// DefaultMinInactivePeriod is one day in seconds.
	DefaultMinInactivePeriod = int64(86400)

	// DefaultMaxInactivePeriod is ten years in seconds.
	DefaultMaxInactivePeriod = int64(315360000)
)

// Params holds the module parameters. Fee rates are in hundredths of a
// percent (see FeeScale).
type Params struct {
	PoolFee           math.Int `json:"pool_fee"`
	PlatformFee       math.Int `json:"platform_fee"`
	FeeReceiver       string   `json:"fee_receiver"`
	MinSwapAmount     math.Int `json:"min_swap_amount"`
	MinInactivePeriod int64    `json:"min_inactive_period"`
	MaxInactivePeriod int64    `json:"max_inactive_period"`
}

// DefaultParams returns the default module parameters: 0.2% pool fee,
// 0.05% platform fee, 800-unit minimum trade.
func DefaultParams() Params {
	return Params{
		PoolFee:           math.NewInt(20),
		PlatformFee:       math.NewInt(5),
		FeeReceiver:       DefaultFeeReceiver,
		MinSwapAmount:     math.NewInt(800),
		MinInactivePeriod: DefaultMinInactivePeriod,
		MaxInactivePeriod: DefaultMaxInactivePeriod,
	}
}

// Validate validates the parameter set.
func (p Params) Validate() error {
	if p.PoolFee.IsNil() || p.PoolFee.IsNegative() {
		return ErrInvalidPool.Wrap("pool fee must be non-negative")
	}
	if p.PlatformFee.IsNil() || p.PlatformFee.IsNegative() {
		return ErrInvalidPool.Wrap("platform fee must be non-negative")
	}
	if p.PoolFee.Add(p.PlatformFee).GTE(math.NewInt(FeeScale)) {
		return ErrInvalidPool.Wrap("combined fee rate must be below 100%")
	}
	if p.FeeReceiver == "" {
		return ErrInvalidAccount.Wrap("fee receiver cannot be empty")
	}
	if p.MinSwapAmount.IsNil() || !p.MinSwapAmount.IsPositive() {
		return ErrInvalidAmount.Wrap("minimum swap amount must be positive")
	}
	if p.MinInactivePeriod <= 0 || p.MaxInactivePeriod < p.MinInactivePeriod {
		return ErrInvalidInactivePeriod.Wrapf("period bounds [%d, %d] are inconsistent",
			p.MinInactivePeriod, p.MaxInactivePeriod)
	}
	return nil
}

// IsValidInactivePeriod reports whether a configured inactivity period is
// inside the allowed bounds.
func (p Params) IsValidInactivePeriod(period int64) bool {
	return period >= p.MinInactivePeriod && period <= p.MaxInactivePeriod
}
