package abi

// Word is a single 32-byte ABI encoding slot.
type Word [32]byte

// peek returns a borrowed view of len bytes beginning at offset, never
// copying. It fails with ErrInvalidData when the requested window runs
// past the end of data; the comparison is structured so that an
// offset+len that would overflow int on a 32-bit host fails the bounds
// check rather than wrapping around.
func peek(data []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset > len(data)-length {
		return nil, ErrInvalidData
	}
	return data[offset : offset+length], nil
}

// peekWord reads a single 32-byte word at offset and copies it into a
// fresh Word so callers never alias the source buffer.
func peekWord(data []byte, offset int) (Word, error) {
	var w Word
	b, err := peek(data, offset, 32)
	if err != nil {
		return w, err
	}
	copy(w[:], b)
	return w, nil
}

// asUsize interprets a word as a length or offset. The leading 28 bytes
// must be zero; this caps every decoded offset at 2^32-1 by
// construction, rejecting adversarial 256-bit offsets before they ever
// reach pointer arithmetic (see SPEC_FULL.md §9).
func asUsize(w Word) (int, error) {
	if err := checkZeroes(w[:28]); err != nil {
		return 0, err
	}
	return int(w[28])<<24 | int(w[29])<<16 | int(w[30])<<8 | int(w[31]), nil
}

// asBool interprets a word as a boolean. The leading 31 bytes must be
// zero; the last byte must be exactly 0 or 1. Both checks apply in strict
// and lenient mode alike, so non-canonical bool encodings are rejected
// even outside strict mode (SPEC_FULL.md §9 "Open questions").
func asBool(w Word) (bool, error) {
	if err := checkZeroes(w[:31]); err != nil {
		return false, err
	}
	switch w[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidData
	}
}
