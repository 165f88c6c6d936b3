package keeper

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store/cachekv"
	storetypes "cosmossdk.io/store/types"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// Keeper holds the exchange ledger and implements every operation of the
// module: token accounting, pool pricing, swap and deposit settlement, and
// inheritance distribution.
type Keeper struct {
	root    storetypes.KVStore
	self    string
	auth    types.AuthKeeper
	ledger  types.ExternalLedger
	emitter types.ActionEmitter
	logger  log.Logger
	metrics *Metrics
}

// NewKeeper builds a Keeper over the given root store. The self argument is
// the account name the module itself runs under; transfers of self-issued
// tokens settle internally while foreign tokens go through the emitter.
func NewKeeper(
	root storetypes.KVStore,
	self string,
	auth types.AuthKeeper,
	ledger types.ExternalLedger,
	emitter types.ActionEmitter,
	logger log.Logger,
) Keeper {
	return Keeper{
		root:    root,
		self:    self,
		auth:    auth,
		ledger:  ledger,
		emitter: emitter,
		logger:  logger.With("module", "x/"+types.ModuleName),
		metrics: GetMetrics(),
	}
}

// SelfContract returns the account name the module runs under.
func (k Keeper) SelfContract() string {
	return k.self
}

// Logger returns the module logger.
func (k Keeper) Logger() log.Logger {
	return k.logger
}

// store returns the KV store for the current operation. A context carrying a
// branched store takes precedence over the root so that failed operations
// leave no partial writes behind.
func (k Keeper) store(ctx types.Context) storetypes.KVStore {
	if s := ctx.KVStore(); s != nil {
		return s
	}
	return k.root
}

// runAtomic executes fn against a branch of the current store and writes the
// branch back only when fn succeeds. Any error discards every write fn made.
func (k Keeper) runAtomic(ctx types.Context, fn func(types.Context) error) error {
	branch := cachekv.NewStore(k.store(ctx))
	if err := fn(ctx.WithKVStore(branch)); err != nil {
		return err
	}
	branch.Write()
	return nil
}

func (k Keeper) mustMarshal(v any) []byte {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

func (k Keeper) mustUnmarshal(bz []byte, v any) {
	if err := json.Unmarshal(bz, v); err != nil {
		panic(err)
	}
}

func secondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

// storeIterator iterates every key under a prefix in ascending order.
func storeIterator(s storetypes.KVStore, prefix []byte) storetypes.Iterator {
	return s.Iterator(prefix, storetypes.PrefixEndBytes(prefix))
}

func poolIDFromIndex(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

func poolIDToIndex(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return bz
}
