package types

import (
	"time"

	"cosmossdk.io/math"
)

// Balance is one (owner, token) row of the ledger.
type Balance struct {
	Owner   string `json:"owner"`
	Balance Asset  `json:"balance"`
}

// TokenStat tracks supply for one token symbol, including the synthetic
// liquidity tokens issued by this module.
type TokenStat struct {
	Supply    Asset  `json:"supply"`
	MaxSupply Asset  `json:"max_supply"`
	Issuer    string `json:"issuer"`
}

// Validate checks the supply bounds invariant.
func (ts TokenStat) Validate() error {
	if !ts.Supply.IsValid() || !ts.MaxSupply.IsValid() {
		return ErrInvalidAsset.Wrapf("token stat for %s has invalid assets", ts.Supply.Symbol.Code)
	}
	if !ts.Supply.Symbol.Equal(ts.MaxSupply.Symbol) {
		return ErrInvalidAsset.Wrapf("token stat supply symbol %s != max supply symbol %s",
			ts.Supply.Symbol, ts.MaxSupply.Symbol)
	}
	if ts.Supply.Amount.IsNegative() || ts.Supply.Amount.GT(ts.MaxSupply.Amount) {
		return ErrInvalidSupply.Wrapf("supply %s outside [0, %s]",
			ts.Supply.Amount, ts.MaxSupply.Amount)
	}
	if ts.Issuer == "" {
		return ErrInvalidAccount.Wrap("token stat issuer cannot be empty")
	}
	return nil
}

// Pool is one constant-product liquidity pool. Reserves are either both zero
// (empty pool, removable) or both positive.
type Pool struct {
	ID           uint64        `json:"id"`
	Code         string        `json:"code"`
	PoolFee      math.Int      `json:"pool_fee"`
	PlatformFee  math.Int      `json:"platform_fee"`
	FeeReceiver  string        `json:"fee_receiver"`
	Token1       ExtendedAsset `json:"token1"`
	Token2       ExtendedAsset `json:"token2"`
	CreateTime   time.Time     `json:"create_time"`
	LastUpdateTime time.Time   `json:"last_update_time"`
}

// IsEmpty reports whether both reserves are zero.
func (p Pool) IsEmpty() bool {
	return p.Token1.Quantity.Amount.IsZero() && p.Token2.Quantity.Amount.IsZero()
}

// Matches reports whether the given token is one of the pool's two reserve
// tokens.
func (p Pool) Matches(token ExtendedSymbol) bool {
	return p.Token1.ExtendedSymbol().Equal(token) || p.Token2.ExtendedSymbol().Equal(token)
}

// Validate checks structural pool invariants.
func (p Pool) Validate() error {
	if p.ID == 0 {
		return ErrInvalidPool.Wrap("pool id cannot be zero")
	}
	if p.Code == "" {
		return ErrInvalidPool.Wrap("pool liquidity code cannot be empty")
	}
	if !p.Token1.Quantity.IsValid() || !p.Token2.Quantity.IsValid() {
		return ErrInvalidAsset.Wrapf("pool %d has invalid reserve assets", p.ID)
	}
	if p.Token1.ExtendedSymbol().Equal(p.Token2.ExtendedSymbol()) {
		return ErrInvalidPool.Wrapf("pool %d holds identical tokens", p.ID)
	}
	if p.Token1.Quantity.Amount.IsNegative() || p.Token2.Quantity.Amount.IsNegative() {
		return ErrInvalidPool.Wrapf("pool %d has a negative reserve", p.ID)
	}
	oneSided := p.Token1.Quantity.Amount.IsZero() != p.Token2.Quantity.Amount.IsZero()
	if oneSided {
		return ErrInvalidPool.Wrapf("pool %d has one-sided reserves", p.ID)
	}
	if p.PoolFee.IsNil() || p.PlatformFee.IsNil() || p.PoolFee.IsNegative() || p.PlatformFee.IsNegative() {
		return ErrInvalidPool.Wrapf("pool %d has invalid fee rates", p.ID)
	}
	if p.FeeReceiver == "" {
		return ErrInvalidAccount.Wrapf("pool %d fee receiver cannot be empty", p.ID)
	}
	return nil
}

// Inheritor is one beneficiary entry: an account and its share in tenths of
// a percent.
type Inheritor struct {
	Account string `json:"account"`
	Share   uint32 `json:"share"`
}

// InheritanceRecord routes an owner's balances to beneficiaries once the
// owner has been inactive past the expiry date.
type InheritanceRecord struct {
	Owner          string      `json:"owner"`
	InheritanceDate time.Time  `json:"inheritance_date"`
	InactivePeriod int64       `json:"inactive_period"`
	Inheritors     []Inheritor `json:"inheritors"`
}

// Expired reports whether the record's expiry is strictly in the past.
func (r InheritanceRecord) Expired(now time.Time) bool {
	return r.InheritanceDate.Before(now)
}

// ValidateInheritors checks a beneficiary list independent of any owner:
// 1-3 unique entries whose shares are each in [1, ShareScale] and sum to
// exactly ShareScale.
func ValidateInheritors(inheritors []Inheritor) error {
	if len(inheritors) < 1 || len(inheritors) > MaxInheritors {
		return ErrInvalidInheritors.Wrapf("inheritor count %d outside [1, %d]", len(inheritors), MaxInheritors)
	}
	seen := make(map[string]struct{}, len(inheritors))
	var sum uint64
	for _, inh := range inheritors {
		if inh.Account == "" {
			return ErrInvalidInheritors.Wrap("inheritor account cannot be empty")
		}
		if _, ok := seen[inh.Account]; ok {
			return ErrInvalidInheritors.Wrapf("duplicate inheritor %s", inh.Account)
		}
		seen[inh.Account] = struct{}{}
		if inh.Share < 1 || inh.Share > ShareScale {
			return ErrInvalidInheritors.Wrapf("inheritor %s share %d outside [1, %d]", inh.Account, inh.Share, ShareScale)
		}
		sum += uint64(inh.Share)
	}
	if sum != ShareScale {
		return ErrInvalidInheritors.Wrapf("inheritor shares sum to %d, want exactly %d", sum, ShareScale)
	}
	return nil
}

// Validate checks the stored record. The no-self rule applies only to
// owner-submitted beneficiary updates, not here: the default record of the
// fee receiver account legitimately lists itself.
func (r InheritanceRecord) Validate() error {
	if r.Owner == "" {
		return ErrInvalidAccount.Wrap("inheritance owner cannot be empty")
	}
	if r.InactivePeriod <= 0 {
		return ErrInvalidInactivePeriod.Wrapf("inactive period %d must be positive", r.InactivePeriod)
	}
	return ValidateInheritors(r.Inheritors)
}
