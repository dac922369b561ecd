package abi

import (
	"fmt"
	"math/big"
)

// Token is a tagged, decoded ABI value. Its shape mirrors ParamType's:
// exactly one of the fields below is meaningful, selected by Kind.
type Token struct {
	Kind    Kind
	Address [20]byte
	Number  *big.Int // Int or Uint
	Boolean bool
	Bytes   []byte // Bytes or FixedBytes
	Str     string
	Items   []Token // Array, FixedArray, or Tuple
}

func NewAddressToken(addr [20]byte) Token { return Token{Kind: KindAddress, Address: addr} }
func NewIntToken(v *big.Int) Token        { return Token{Kind: KindInt, Number: v} }
func NewUintToken(v *big.Int) Token       { return Token{Kind: KindUint, Number: v} }
func NewBoolToken(v bool) Token           { return Token{Kind: KindBool, Boolean: v} }
func NewFixedBytesToken(b []byte) Token   { return Token{Kind: KindFixedBytes, Bytes: b} }
func NewBytesToken(b []byte) Token        { return Token{Kind: KindBytes, Bytes: b} }
func NewStringToken(s string) Token       { return Token{Kind: KindString, Str: s} }
func NewArrayToken(items []Token) Token   { return Token{Kind: KindArray, Items: items} }

func NewFixedArrayToken(items []Token) Token { return Token{Kind: KindFixedArray, Items: items} }
func NewTupleToken(items []Token) Token      { return Token{Kind: KindTuple, Items: items} }

func (t Token) String() string {
	switch t.Kind {
	case KindAddress:
		return fmt.Sprintf("%#x", t.Address)
	case KindInt, KindUint:
		return t.Number.String()
	case KindBool:
		return fmt.Sprintf("%t", t.Boolean)
	case KindFixedBytes, KindBytes:
		return fmt.Sprintf("%#x", t.Bytes)
	case KindString:
		return t.Str
	case KindArray, KindFixedArray, KindTuple:
		s := "["
		for i, item := range t.Items {
			if i > 0 {
				s += ","
			}
			s += item.String()
		}
		return s + "]"
	default:
		return "<invalid token>"
	}
}
