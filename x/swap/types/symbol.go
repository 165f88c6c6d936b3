package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
)

// MaxAssetAmount is the largest representable amount of any asset.
const MaxAssetAmount = int64(1)<<62 - 1

// Symbol identifies a token: an uppercase code plus the number of decimal
// places of its smallest denomination.
type Symbol struct {
	Code      string `json:"code"`
	Precision uint8  `json:"precision"`
}

// NewSymbol constructs a Symbol without validating it.
func NewSymbol(code string, precision uint8) Symbol {
	return Symbol{Code: code, Precision: precision}
}

// IsValid reports whether the symbol code is 1-7 uppercase letters.
func (s Symbol) IsValid() bool {
	if len(s.Code) < 1 || len(s.Code) > 7 {
		return false
	}
	for _, c := range s.Code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func (s Symbol) Equal(o Symbol) bool {
	return s.Code == o.Code && s.Precision == o.Precision
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// ExtendedSymbol is a symbol qualified by the token contract that issues it.
type ExtendedSymbol struct {
	Symbol   Symbol `json:"symbol"`
	Contract string `json:"contract"`
}

func NewExtendedSymbol(sym Symbol, contract string) ExtendedSymbol {
	return ExtendedSymbol{Symbol: sym, Contract: contract}
}

func (es ExtendedSymbol) Equal(o ExtendedSymbol) bool {
	return es.Symbol.Equal(o.Symbol) && es.Contract == o.Contract
}

func (es ExtendedSymbol) String() string {
	return es.Symbol.Code + "@" + es.Contract
}

// Asset is an integer quantity of a token in its smallest denomination.
type Asset struct {
	Amount math.Int `json:"amount"`
	Symbol Symbol   `json:"symbol"`
}

// NewAsset constructs an Asset from an int64 amount.
func NewAsset(amount int64, sym Symbol) Asset {
	return Asset{Amount: math.NewInt(amount), Symbol: sym}
}

// NewAssetFromInt constructs an Asset from a math.Int amount.
func NewAssetFromInt(amount math.Int, sym Symbol) Asset {
	return Asset{Amount: amount, Symbol: sym}
}

// ZeroAsset returns a zero quantity of the given symbol.
func ZeroAsset(sym Symbol) Asset {
	return Asset{Amount: math.ZeroInt(), Symbol: sym}
}

// IsValid reports whether the symbol is valid and the amount is initialized
// and within the representable range.
func (a Asset) IsValid() bool {
	if !a.Symbol.IsValid() || a.Amount.IsNil() {
		return false
	}
	max := math.NewInt(MaxAssetAmount)
	return a.Amount.LTE(max) && a.Amount.GTE(max.Neg())
}

// IsPositive reports whether the amount is strictly positive.
func (a Asset) IsPositive() bool {
	return !a.Amount.IsNil() && a.Amount.IsPositive()
}

// Add returns a+b. It panics on a symbol mismatch; callers validate symbols
// before doing arithmetic.
func (a Asset) Add(b Asset) Asset {
	if !a.Symbol.Equal(b.Symbol) {
		panic(fmt.Sprintf("asset symbol mismatch: %s vs %s", a.Symbol, b.Symbol))
	}
	return Asset{Amount: a.Amount.Add(b.Amount), Symbol: a.Symbol}
}

// Sub returns a-b. It panics on a symbol mismatch.
func (a Asset) Sub(b Asset) Asset {
	if !a.Symbol.Equal(b.Symbol) {
		panic(fmt.Sprintf("asset symbol mismatch: %s vs %s", a.Symbol, b.Symbol))
	}
	return Asset{Amount: a.Amount.Sub(b.Amount), Symbol: a.Symbol}
}

func (a Asset) String() string {
	return a.Amount.String() + " " + a.Symbol.Code
}

// ExtendedAsset is an asset qualified by its issuing token contract.
type ExtendedAsset struct {
	Quantity Asset  `json:"quantity"`
	Contract string `json:"contract"`
}

func NewExtendedAsset(quantity Asset, contract string) ExtendedAsset {
	return ExtendedAsset{Quantity: quantity, Contract: contract}
}

// ExtendedSymbol returns the asset's symbol together with its contract.
func (ea ExtendedAsset) ExtendedSymbol() ExtendedSymbol {
	return ExtendedSymbol{Symbol: ea.Quantity.Symbol, Contract: ea.Contract}
}

func (ea ExtendedAsset) String() string {
	return ea.Quantity.Amount.String() + " " + ea.ExtendedSymbol().String()
}

// PairHash derives the store index key for an ordered token pair. Pool pair
// uniqueness is order-independent, so callers look up both orderings.
func PairHash(token1, token2 ExtendedSymbol) string {
	sum := sha256.Sum256([]byte(token1.String() + "/" + token2.String()))
	return hex.EncodeToString(sum[:])
}

// PoolSymbol derives the liquidity token symbol for a pool id: "LQ" followed
// by the id in bijective base-26 (1 -> LQA, 26 -> LQZ, 27 -> LQAA),
// precision 0.
func PoolSymbol(poolID uint64) Symbol {
	var tail []byte
	for poolID > 0 {
		rem := poolID % 26
		if rem == 0 {
			rem = 26
		}
		tail = append(tail, byte('A'+rem-1))
		poolID = (poolID - rem) / 26
	}
	for i, j := 0, len(tail)-1; i < j; i, j = i+1, j-1 {
		tail[i], tail[j] = tail[j], tail[i]
	}
	return Symbol{Code: "LQ" + string(tail), Precision: 0}
}
