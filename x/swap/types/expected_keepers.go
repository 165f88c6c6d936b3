package types

// Host-provided collaborators. The module never reimplements these; the
// host ledger supplies authorization, account existence, external token
// tables, and outbound action dispatch.

// AuthKeeper verifies that an actor authorized the current operation.
type AuthKeeper interface {
	// HasAuth reports whether the named account authorized the operation.
	HasAuth(ctx Context, account string) bool

	// IsAccount reports whether the named account exists on the host ledger.
	IsAccount(ctx Context, account string) bool
}

// ExternalLedger exposes the token tables of other token contracts. Queries
// against this module's own contract are answered from the local store and
// never reach this interface.
type ExternalLedger interface {
	// HasTokenStat reports whether the token exists on its contract with the
	// exact symbol (code and precision).
	HasTokenStat(ctx Context, token ExtendedSymbol) bool

	// HasBalance reports whether the owner holds an open balance row for the
	// token on its contract, regardless of amount.
	HasBalance(ctx Context, owner string, token ExtendedSymbol) bool
}

// ActionEmitter schedules outbound transfers on external token contracts.
// Scheduled actions execute within the same atomic unit as the originating
// operation; an error aborts that whole unit.
type ActionEmitter interface {
	EmitTransfer(ctx Context, contract, from, to string, quantity Asset, memo string) error
}
