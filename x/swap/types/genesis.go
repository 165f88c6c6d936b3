package types

// GenesisState is the full exported state of the module.
type GenesisState struct {
	Params       Params              `json:"params"`
	Tokens       []TokenStat         `json:"tokens"`
	Balances     []Balance           `json:"balances"`
	Pools        []Pool              `json:"pools"`
	Inheritances []InheritanceRecord `json:"inheritances"`
	NextPoolID   uint64              `json:"next_pool_id"`
}

// DefaultGenesis returns an empty genesis with default parameters.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		NextPoolID: 1,
	}
}

// Validate performs structural validation of a genesis state.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return ErrInvalidGenesis.Wrapf("params: %v", err)
	}

	tokens := make(map[string]struct{}, len(gs.Tokens))
	for _, ts := range gs.Tokens {
		if err := ts.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("token %s: %v", ts.Supply.Symbol.Code, err)
		}
		if _, ok := tokens[ts.Supply.Symbol.Code]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate token %s", ts.Supply.Symbol.Code)
		}
		tokens[ts.Supply.Symbol.Code] = struct{}{}
	}

	balances := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		if b.Owner == "" {
			return ErrInvalidGenesis.Wrap("balance owner cannot be empty")
		}
		if !b.Balance.IsValid() || b.Balance.Amount.IsNegative() {
			return ErrInvalidGenesis.Wrapf("balance of %s: invalid asset %s", b.Owner, b.Balance)
		}
		if _, ok := tokens[b.Balance.Symbol.Code]; !ok {
			return ErrInvalidGenesis.Wrapf("balance of %s references unknown token %s", b.Owner, b.Balance.Symbol.Code)
		}
		key := b.Owner + "/" + b.Balance.Symbol.Code
		if _, ok := balances[key]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate balance %s", key)
		}
		balances[key] = struct{}{}
	}

	poolIDs := make(map[uint64]struct{}, len(gs.Pools))
	poolCodes := make(map[string]struct{}, len(gs.Pools))
	pairs := make(map[string]struct{}, len(gs.Pools))
	for _, p := range gs.Pools {
		if err := p.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("pool %d: %v", p.ID, err)
		}
		if p.ID >= gs.NextPoolID {
			return ErrInvalidGenesis.Wrapf("pool %d not below next pool id %d", p.ID, gs.NextPoolID)
		}
		if _, ok := poolIDs[p.ID]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate pool id %d", p.ID)
		}
		poolIDs[p.ID] = struct{}{}
		if _, ok := poolCodes[p.Code]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate pool liquidity code %s", p.Code)
		}
		poolCodes[p.Code] = struct{}{}
		if _, ok := tokens[p.Code]; !ok {
			return ErrInvalidGenesis.Wrapf("pool %d liquidity token %s has no token stat", p.ID, p.Code)
		}
		h1 := PairHash(p.Token1.ExtendedSymbol(), p.Token2.ExtendedSymbol())
		h2 := PairHash(p.Token2.ExtendedSymbol(), p.Token1.ExtendedSymbol())
		if _, ok := pairs[h1]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate pool pair for pool %d", p.ID)
		}
		pairs[h1] = struct{}{}
		pairs[h2] = struct{}{}
	}

	owners := make(map[string]struct{}, len(gs.Inheritances))
	for _, r := range gs.Inheritances {
		if err := r.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("inheritance of %s: %v", r.Owner, err)
		}
		if _, ok := owners[r.Owner]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate inheritance record for %s", r.Owner)
		}
		owners[r.Owner] = struct{}{}
	}

	return nil
}
