package types

import (
	"strconv"
	"strings"

	"cosmossdk.io/math"
)

// Memo prefixes classifying an incoming transfer.
const (
	SwapMemoPrefix    = "swap:"
	DepositMemoPrefix = "deposit:"
)

// Command is a parsed transfer memo: either a SwapCommand or a
// DepositCommand.
type Command interface {
	isCommand()
}

// SwapCommand routes an incoming transfer through one or more pools.
type SwapCommand struct {
	PoolIDs      []uint64
	MinAmountOut math.Int
}

// DepositCommand contributes an incoming transfer to a pool as one side of
// a liquidity deposit.
type DepositCommand struct {
	PoolID uint64
}

func (SwapCommand) isCommand()    {}
func (DepositCommand) isCommand() {}

// IsSwapMemo reports whether the memo is classified as a swap instruction.
func IsSwapMemo(memo string) bool {
	return strings.HasPrefix(memo, SwapMemoPrefix)
}

// IsDepositMemo reports whether the memo is classified as a deposit
// instruction.
func IsDepositMemo(memo string) bool {
	return strings.HasPrefix(memo, DepositMemoPrefix)
}

// ParseMemo decodes a structured memo of ";"-separated "key:value" pairs
// into a typed command. Parsing fails closed: an unknown key, a missing
// required key, or a non-digit character where a number is expected rejects
// the whole memo.
//
// Accepted forms:
//
//	swap:<id>[-<id>...]
//	swap:<id>[-<id>...];min:<uint>
//	deposit:<poolId>
func ParseMemo(memo string) (Command, error) {
	params, err := toKeyValue(memo)
	if err != nil {
		return nil, err
	}

	switch {
	case IsSwapMemo(memo):
		return parseSwapCommand(params)
	case IsDepositMemo(memo):
		return parseDepositCommand(params)
	default:
		return nil, ErrInvalidMemo.Wrapf("unrecognized memo %q", memo)
	}
}

func parseSwapCommand(params map[string]string) (Command, error) {
	ids, ok := params["swap"]
	if !ok {
		return nil, ErrInvalidMemo.Wrap("swap memo missing pool ids")
	}
	if len(params) > 2 || (len(params) == 2 && params["min"] == "") {
		return nil, ErrInvalidMemo.Wrap("swap memo has unexpected keys")
	}

	poolIDs, err := parsePoolIDs(ids)
	if err != nil {
		return nil, err
	}

	minOut := math.OneInt()
	if raw, ok := params["min"]; ok {
		v, err := parseUint(raw)
		if err != nil {
			return nil, ErrInvalidMemo.Wrapf("invalid min amount %q", raw)
		}
		if v == 0 {
			return nil, ErrInvalidMemo.Wrap("min amount must be positive")
		}
		minOut = math.NewIntFromUint64(v)
	}

	return SwapCommand{PoolIDs: poolIDs, MinAmountOut: minOut}, nil
}

func parseDepositCommand(params map[string]string) (Command, error) {
	raw, ok := params["deposit"]
	if !ok || len(params) != 1 {
		return nil, ErrInvalidMemo.Wrap("deposit memo must carry exactly a pool id")
	}
	id, err := parseUint(raw)
	if err != nil {
		return nil, ErrInvalidMemo.Wrapf("invalid pool id %q", raw)
	}
	return DepositCommand{PoolID: id}, nil
}

func parsePoolIDs(raw string) ([]uint64, error) {
	parts := strings.Split(raw, "-")
	ids := make([]uint64, 0, len(parts))
	for _, p := range parts {
		id, err := parseUint(p)
		if err != nil {
			return nil, ErrInvalidMemo.Wrapf("invalid pool id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseUint accepts decimal digits only; strconv alone would also accept
// signs and leading "0x".
func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, ErrInvalidMemo.Wrap("empty number")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, ErrInvalidMemo.Wrapf("non-digit character in %q", s)
		}
	}
	return strconv.ParseUint(s, 10, 64)
}

// toKeyValue splits the memo into key:value pairs separated by ";". A pair
// without a colon, or a duplicate key, rejects the memo.
func toKeyValue(memo string) (map[string]string, error) {
	params := make(map[string]string)
	for _, pair := range strings.Split(memo, ";") {
		key, value, found := strings.Cut(pair, ":")
		if !found || key == "" {
			return nil, ErrInvalidMemo.Wrapf("malformed pair %q", pair)
		}
		if _, ok := params[key]; ok {
			return nil, ErrInvalidMemo.Wrapf("duplicate key %q", key)
		}
		params[key] = value
	}
	return params, nil
}
