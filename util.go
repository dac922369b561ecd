package abi

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// BE is the big-endian byte order every ABI word is encoded in.
var BE = binary.BigEndian

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
