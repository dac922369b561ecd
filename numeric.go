package abi

import (
	"math/big"
	"strings"
	"unicode/utf8"
)

var wordBit = new(big.Int).Lsh(big.NewInt(1), 256)

// unsignedFromBigEndian interprets a 32-byte big-endian buffer as an
// unsigned 256-bit integer.
func unsignedFromBigEndian(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// signedFromBigEndian interprets a 32-byte big-endian buffer as a
// two's-complement signed 256-bit integer: values whose top bit is set
// are reinterpreted as negative, matching Solidity's int256 encoding.
func signedFromBigEndian(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		v.Sub(v, wordBit)
	}
	return v
}

// toValidUTF8 performs a lossy UTF-8 decode: invalid byte sequences are
// replaced with U+FFFD rather than causing a decode failure, since
// on-chain string data is adversarial and callers want best-effort
// decoding (SPEC_FULL.md §4.3). strings.ToValidUTF8 is the stdlib
// equivalent of Rust's String::from_utf8_lossy; no third-party library
// in the pack offers anything more idiomatic for this one-line job.
func toValidUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
