package types

import (
	"context"
	"time"

	storetypes "cosmossdk.io/store/types"
)

// Transfer is one incoming token transfer as reported by the host. Contract
// is the token contract the transfer was executed on.
type Transfer struct {
	Contract string
	From     string
	To       string
	Quantity Asset
	Memo     string
}

// Context carries the per-operation environment: the current time, the
// branched store the operation mutates, the event manager, and, for
// transfer notifications, the full batch of incoming transfers of the
// enclosing atomic transaction. Deposit pairing re-derives its pair from
// that batch rather than from persisted state.
type Context struct {
	context.Context

	blockTime    time.Time
	store        storetypes.KVStore
	eventManager *EventManager
	transfers    []Transfer
}

// NewContext constructs an operation context at the given time.
func NewContext(now time.Time) Context {
	return Context{
		Context:      context.Background(),
		blockTime:    now,
		eventManager: NewEventManager(),
	}
}

// BlockTime returns the operation's notion of "now".
func (c Context) BlockTime() time.Time { return c.blockTime }

// KVStore returns the store branch attached to this context, or nil when
// the keeper should fall back to its root store.
func (c Context) KVStore() storetypes.KVStore { return c.store }

// EventManager returns the context's event collector.
func (c Context) EventManager() *EventManager { return c.eventManager }

// IncomingTransfers returns the transfer batch of the enclosing atomic
// transaction.
func (c Context) IncomingTransfers() []Transfer { return c.transfers }

// WithKVStore attaches a store branch.
func (c Context) WithKVStore(store storetypes.KVStore) Context {
	c.store = store
	return c
}

// WithIncomingTransfers attaches the transfer batch.
func (c Context) WithIncomingTransfers(transfers []Transfer) Context {
	c.transfers = transfers
	return c
}

// WithBlockTime overrides the operation time.
func (c Context) WithBlockTime(now time.Time) Context {
	c.blockTime = now
	return c
}
