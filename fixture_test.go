package abi

import (
	"math/big"
)

// The functions below are a test-only encoder: the structural inverse of
// decodeParam/decodeImpl in decoder.go. Hand-copying large hex fixtures
// without a way to execute and check them is error-prone, so fixtures in
// this package are instead built programmatically and round-tripped
// through Decode/DecodeValidate -- the encoder and decoder are written
// independently enough (one walks Token -> []byte, the other []byte ->
// Token) that a round trip is a meaningful check rather than a tautology.

func encodeWord(n int) []byte {
	w := make([]byte, 32)
	BE.PutUint64(w[24:32], uint64(n))
	return w
}

func encodeAddressWord(a [20]byte) []byte {
	w := make([]byte, 32)
	copy(w[12:], a[:])
	return w
}

func encodeBoolWord(b bool) []byte {
	w := make([]byte, 32)
	if b {
		w[31] = 1
	}
	return w
}

func encodeUintWord(v *big.Int) []byte {
	w := make([]byte, 32)
	v.FillBytes(w)
	return w
}

func encodeIntWord(v *big.Int) []byte {
	if v.Sign() >= 0 {
		return encodeUintWord(v)
	}
	biased := new(big.Int).Add(v, wordBit)
	return encodeUintWord(biased)
}

func encodeFixedBytesWord(b []byte) []byte {
	w := make([]byte, 32)
	copy(w, b)
	return w
}

func padRightTo32(b []byte) []byte {
	out := make([]byte, roundUpNearestMultiple32(len(b)))
	copy(out, b)
	return out
}

// encodeStatic encodes a value of a non-dynamic type into the bytes it
// occupies directly in a head slot (32 bytes for scalars, more for
// static tuples/fixed arrays of static members).
func encodeStatic(p ParamType, tok Token) []byte {
	switch p.Kind {
	case KindAddress:
		return encodeAddressWord(tok.Address)
	case KindInt:
		return encodeIntWord(tok.Number)
	case KindUint:
		return encodeUintWord(tok.Number)
	case KindBool:
		return encodeBoolWord(tok.Boolean)
	case KindFixedBytes:
		return encodeFixedBytesWord(tok.Bytes)
	case KindFixedArray:
		out := make([]byte, 0, p.Size*32)
		for _, item := range tok.Items {
			out = append(out, encodeStatic(*p.Elem, item)...)
		}
		return out
	case KindTuple:
		out := make([]byte, 0, len(p.Tuple)*32)
		for i, member := range p.Tuple {
			out = append(out, encodeStatic(member, tok.Items[i])...)
		}
		return out
	default:
		panic("encodeStatic: unsupported kind")
	}
}

// encodeElements lays out a flat sequence of params (top-level params, a
// tuple's members, or an array's repeated element type) as ABI heads
// followed by tails, exactly mirroring how decodeImpl/decodeParam
// consume that same layout.
func encodeElements(types []ParamType, tokens []Token) []byte {
	heads := make([][]byte, len(types))
	tails := make([][]byte, len(types))
	headSize := 0
	for i, p := range types {
		if p.IsDynamic() {
			headSize += 32
		} else {
			heads[i] = encodeStatic(p, tokens[i])
			headSize += len(heads[i])
		}
	}

	tailOffset := headSize
	for i, p := range types {
		if p.IsDynamic() {
			tails[i] = encodeDynamicTail(p, tokens[i])
			heads[i] = encodeWord(tailOffset)
			tailOffset += len(tails[i])
		}
	}

	out := make([]byte, 0, tailOffset)
	for _, h := range heads {
		out = append(out, h...)
	}
	for _, t := range tails {
		out = append(out, t...)
	}
	return out
}

// encodeDynamicTail encodes a dynamic-type value into the bytes it
// occupies in a tail: the content a head offset word points at.
func encodeDynamicTail(p ParamType, tok Token) []byte {
	switch p.Kind {
	case KindBytes:
		out := append([]byte{}, encodeWord(len(tok.Bytes))...)
		return append(out, padRightTo32(tok.Bytes)...)
	case KindString:
		b := []byte(tok.Str)
		out := append([]byte{}, encodeWord(len(b))...)
		return append(out, padRightTo32(b)...)
	case KindArray:
		types := make([]ParamType, len(tok.Items))
		for i := range types {
			types[i] = *p.Elem
		}
		out := append([]byte{}, encodeWord(len(tok.Items))...)
		return append(out, encodeElements(types, tok.Items)...)
	case KindFixedArray:
		types := make([]ParamType, p.Size)
		for i := range types {
			types[i] = *p.Elem
		}
		return encodeElements(types, tok.Items)
	case KindTuple:
		return encodeElements(p.Tuple, tok.Items)
	default:
		panic("encodeDynamicTail: unsupported kind")
	}
}

// encodeParams is the fixture entry point: build the ABI encoding for a
// top-level parameter list, the same layout Decode/DecodeValidate
// expect.
func encodeParams(types []ParamType, tokens []Token) []byte {
	return encodeElements(types, tokens)
}
