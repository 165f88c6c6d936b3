package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"github.com/pcash-chain/swapcore/x/swap/keeper"
	"github.com/pcash-chain/swapcore/x/swap/types"
)

// SelfContract is the account name the module runs under in tests.
const SelfContract = "swap.pcash"

// Fixture bundles a test keeper with its stubbed host collaborators.
type Fixture struct {
	Keeper  keeper.Keeper
	Ctx     types.Context
	Auth    *AuthStub
	Ledger  *LedgerStub
	Emitter *EmitterStub
}

// SwapKeeper creates a test keeper over an in-memory store with permissive
// host stubs and the default genesis applied.
func SwapKeeper(t testing.TB) *Fixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	auth := &AuthStub{}
	ledger := &LedgerStub{}
	emitter := &EmitterStub{}

	k := keeper.NewKeeper(
		stateStore.GetKVStore(storeKey),
		SelfContract,
		auth,
		ledger,
		emitter,
		log.NewNopLogger(),
	)

	ctx := types.NewContext(time.Unix(1700000000, 0).UTC())
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return &Fixture{Keeper: k, Ctx: ctx, Auth: auth, Ledger: ledger, Emitter: emitter}
}

// AuthStub authorizes everyone and treats every account as existing unless
// told otherwise.
type AuthStub struct {
	DeniedAuth      map[string]bool
	MissingAccounts map[string]bool
}

func (a *AuthStub) HasAuth(_ types.Context, account string) bool {
	return !a.DeniedAuth[account]
}

func (a *AuthStub) IsAccount(_ types.Context, account string) bool {
	return !a.MissingAccounts[account]
}

// Deny revokes the authority of an account for the rest of the test.
func (a *AuthStub) Deny(account string) {
	if a.DeniedAuth == nil {
		a.DeniedAuth = map[string]bool{}
	}
	a.DeniedAuth[account] = true
}

// RemoveAccount makes an account unknown to the host ledger.
func (a *AuthStub) RemoveAccount(account string) {
	if a.MissingAccounts == nil {
		a.MissingAccounts = map[string]bool{}
	}
	a.MissingAccounts[account] = true
}

// LedgerStub answers external token queries. Everything exists unless
// marked missing.
type LedgerStub struct {
	MissingTokens   map[string]bool
	MissingBalances map[string]bool
}

func (l *LedgerStub) HasTokenStat(_ types.Context, token types.ExtendedSymbol) bool {
	return !l.MissingTokens[token.String()]
}

func (l *LedgerStub) HasBalance(_ types.Context, owner string, token types.ExtendedSymbol) bool {
	return !l.MissingBalances[owner+"/"+token.String()]
}

// RemoveToken makes an external token unknown.
func (l *LedgerStub) RemoveToken(token types.ExtendedSymbol) {
	if l.MissingTokens == nil {
		l.MissingTokens = map[string]bool{}
	}
	l.MissingTokens[token.String()] = true
}

// RemoveBalance closes an external balance row.
func (l *LedgerStub) RemoveBalance(owner string, token types.ExtendedSymbol) {
	if l.MissingBalances == nil {
		l.MissingBalances = map[string]bool{}
	}
	l.MissingBalances[owner+"/"+token.String()] = true
}

// EmittedTransfer is one outbound transfer recorded by the EmitterStub.
type EmittedTransfer struct {
	Contract string
	From     string
	To       string
	Quantity types.Asset
	Memo     string
}

// EmitterStub records outbound transfers instead of dispatching them.
type EmitterStub struct {
	Transfers []EmittedTransfer
	Err       error
}

func (e *EmitterStub) EmitTransfer(_ types.Context, contract, from, to string, quantity types.Asset, memo string) error {
	if e.Err != nil {
		return e.Err
	}
	e.Transfers = append(e.Transfers, EmittedTransfer{
		Contract: contract,
		From:     from,
		To:       to,
		Quantity: quantity,
		Memo:     memo,
	})
	return nil
}

// Reset clears the recorded transfers.
func (e *EmitterStub) Reset() {
	e.Transfers = nil
}
