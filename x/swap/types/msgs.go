package types

// Action messages accepted by the module. ValidateBasic performs the
// stateless checks; stateful validation happens in the keeper.

// MsgOpen creates a zero balance row (and an inheritance record if absent).
type MsgOpen struct {
	Owner  string `json:"owner"`
	Symbol Symbol `json:"symbol"`
	Payer  string `json:"payer"`
}

func (m MsgOpen) ValidateBasic() error {
	if m.Owner == "" || m.Payer == "" {
		return ErrInvalidAccount.Wrap("owner and payer are required")
	}
	if !m.Symbol.IsValid() {
		return ErrInvalidSymbol.Wrapf("%s", m.Symbol)
	}
	return nil
}

// MsgClose removes a zero balance row.
type MsgClose struct {
	Owner  string `json:"owner"`
	Symbol Symbol `json:"symbol"`
}

func (m MsgClose) ValidateBasic() error {
	if m.Owner == "" {
		return ErrInvalidAccount.Wrap("owner is required")
	}
	if !m.Symbol.IsValid() {
		return ErrInvalidSymbol.Wrapf("%s", m.Symbol)
	}
	return nil
}

// MsgCreateToken registers a new token stat row.
type MsgCreateToken struct {
	Issuer    string `json:"issuer"`
	MaxSupply Asset  `json:"max_supply"`
}

func (m MsgCreateToken) ValidateBasic() error {
	if m.Issuer == "" {
		return ErrInvalidAccount.Wrap("issuer is required")
	}
	if !m.MaxSupply.IsValid() {
		return ErrInvalidAsset.Wrapf("%s", m.MaxSupply)
	}
	if !m.MaxSupply.IsPositive() {
		return ErrInvalidAmount.Wrap("max supply must be positive")
	}
	return nil
}

// MsgIssue mints supply to a recipient.
type MsgIssue struct {
	To       string `json:"to"`
	Quantity Asset  `json:"quantity"`
	Memo     string `json:"memo"`
}

func (m MsgIssue) ValidateBasic() error {
	if m.To == "" {
		return ErrInvalidAccount.Wrap("recipient is required")
	}
	if !m.Quantity.IsValid() {
		return ErrInvalidAsset.Wrapf("%s", m.Quantity)
	}
	if !m.Quantity.IsPositive() {
		return ErrInvalidAmount.Wrap("must issue positive quantity")
	}
	if len(m.Memo) > MaxMemoLength {
		return ErrMemoTooLong
	}
	return nil
}

// MsgRetire burns supply from a holder.
type MsgRetire struct {
	From     string `json:"from"`
	Quantity Asset  `json:"quantity"`
	Memo     string `json:"memo"`
}

func (m MsgRetire) ValidateBasic() error {
	if m.From == "" {
		return ErrInvalidAccount.Wrap("holder is required")
	}
	if !m.Quantity.IsValid() {
		return ErrInvalidAsset.Wrapf("%s", m.Quantity)
	}
	if !m.Quantity.IsPositive() {
		return ErrInvalidAmount.Wrap("must retire positive quantity")
	}
	if len(m.Memo) > MaxMemoLength {
		return ErrMemoTooLong
	}
	return nil
}

// MsgTransfer moves a self-issued token between two ledger accounts.
type MsgTransfer struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity Asset  `json:"quantity"`
	Memo     string `json:"memo"`
}

func (m MsgTransfer) ValidateBasic() error {
	if m.From == "" || m.To == "" {
		return ErrInvalidAccount.Wrap("sender and recipient are required")
	}
	if m.From == m.To {
		return ErrInvalidAccount.Wrap("cannot transfer to self")
	}
	if !m.Quantity.IsValid() {
		return ErrInvalidAsset.Wrapf("%s", m.Quantity)
	}
	if !m.Quantity.IsPositive() {
		return ErrInvalidAmount.Wrap("must transfer positive quantity")
	}
	if len(m.Memo) > MaxMemoLength {
		return ErrMemoTooLong
	}
	return nil
}

// MsgCreatePool registers an empty pool for a token pair.
type MsgCreatePool struct {
	Creator string         `json:"creator"`
	Token1  ExtendedSymbol `json:"token1"`
	Token2  ExtendedSymbol `json:"token2"`
}

func (m MsgCreatePool) ValidateBasic() error {
	if m.Creator == "" {
		return ErrInvalidAccount.Wrap("creator is required")
	}
	if !m.Token1.Symbol.IsValid() {
		return ErrInvalidSymbol.Wrapf("token1 %s", m.Token1.Symbol)
	}
	if !m.Token2.Symbol.IsValid() {
		return ErrInvalidSymbol.Wrapf("token2 %s", m.Token2.Symbol)
	}
	if m.Token1.Equal(m.Token2) {
		return ErrInvalidPool.Wrap("tokens must be different")
	}
	return nil
}

// MsgRemovePool erases an empty pool and its liquidity token stat.
type MsgRemovePool struct {
	PoolID uint64 `json:"pool_id"`
}

func (m MsgRemovePool) ValidateBasic() error {
	if m.PoolID == 0 {
		return ErrInvalidPool.Wrap("pool id is required")
	}
	return nil
}

// MsgWithdraw redeems liquidity tokens for the underlying reserves.
type MsgWithdraw struct {
	Owner    string `json:"owner"`
	LqTokens Asset  `json:"lq_tokens"`
}

func (m MsgWithdraw) ValidateBasic() error {
	if m.Owner == "" {
		return ErrInvalidAccount.Wrap("owner is required")
	}
	if !m.LqTokens.IsValid() {
		return ErrInvalidAsset.Wrapf("%s", m.LqTokens)
	}
	if !m.LqTokens.IsPositive() {
		return ErrInvalidAmount.Wrap("withdraw amount must be positive")
	}
	return nil
}

// MsgDistributeInheritance triggers distribution of one token balance of an
// expired account.
type MsgDistributeInheritance struct {
	Initiator string `json:"initiator"`
	Owner     string `json:"owner"`
	TokenCode string `json:"token_code"`
}

func (m MsgDistributeInheritance) ValidateBasic() error {
	if m.Initiator == "" || m.Owner == "" {
		return ErrInvalidAccount.Wrap("initiator and owner are required")
	}
	if !(Symbol{Code: m.TokenCode}).IsValid() {
		return ErrInvalidSymbol.Wrapf("%q", m.TokenCode)
	}
	return nil
}

// MsgUpdateInheritanceDate resets the owner's expiry from a new inactivity
// period.
type MsgUpdateInheritanceDate struct {
	Owner          string `json:"owner"`
	InactivePeriod int64  `json:"inactive_period"`
}

func (m MsgUpdateInheritanceDate) ValidateBasic() error {
	if m.Owner == "" {
		return ErrInvalidAccount.Wrap("owner is required")
	}
	if m.InactivePeriod <= 0 {
		return ErrInvalidInactivePeriod.Wrap("inactive period must be positive")
	}
	return nil
}

// MsgUpdateInheritors replaces the owner's beneficiary list.
type MsgUpdateInheritors struct {
	Owner      string      `json:"owner"`
	Inheritors []Inheritor `json:"inheritors"`
}

func (m MsgUpdateInheritors) ValidateBasic() error {
	if m.Owner == "" {
		return ErrInvalidAccount.Wrap("owner is required")
	}
	for _, inh := range m.Inheritors {
		if inh.Account == m.Owner {
			return ErrInvalidInheritors.Wrap("owner cannot be in inheritors list")
		}
	}
	return ValidateInheritors(m.Inheritors)
}
