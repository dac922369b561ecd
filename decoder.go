package abi

import "fmt"

// decodeResult is the return shape of decodeParam: the decoded token and
// the cursor immediately after the head slot p occupied (never after
// any tail p's head slot pointed into).
type decodeResult struct {
	token     Token
	newOffset int
}

// reserveTokens is the Go-native stand-in for Rust's try_reserve_exact:
// Go has no fallible-allocation API, so a length-driven []Token
// allocation is instead bounds-checked against the bytes actually
// remaining before it happens. The guard requires at least one remaining
// byte per element; a length field claiming more (e.g. 0xffffffff) is
// rejected here instead of being handed to make(). Element types that
// occupy no bytes at all (FixedArray(_, 0) and tuples of them) are held
// to the same one-byte floor.
func reserveTokens(n, remaining int) ([]Token, error) {
	if n < 0 || n > remaining {
		return nil, fmt.Errorf("%w: refusing to allocate %d elements against %d remaining bytes", ErrInvalidData, n, remaining)
	}
	return make([]Token, 0, n), nil
}

// decodeParam decodes a single value of type p at offset within data,
// the central recursive routine described in SPEC_FULL.md §4.3.
func decodeParam(p *ParamType, data []byte, offset int, validate bool) (decodeResult, error) {
	switch p.Kind {
	case KindAddress:
		w, err := peekWord(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		if validate {
			if err := checkZeroes(w[:12]); err != nil {
				return decodeResult{}, err
			}
		}
		var addr [20]byte
		copy(addr[:], w[12:])
		return decodeResult{token: NewAddressToken(addr), newOffset: offset + 32}, nil

	case KindInt:
		w, err := peekWord(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: NewIntToken(signedFromBigEndian(w[:])), newOffset: offset + 32}, nil

	case KindUint:
		w, err := peekWord(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: NewUintToken(unsignedFromBigEndian(w[:])), newOffset: offset + 32}, nil

	case KindBool:
		w, err := peekWord(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		b, err := asBool(w)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: NewBoolToken(b), newOffset: offset + 32}, nil

	case KindFixedBytes:
		// FixedBytes is anything from bytes1 to bytes32, right-padded
		// with zeros to fill a full word.
		b, err := takeBytes(data, offset, p.Size, validate)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: NewFixedBytesToken(b), newOffset: offset + 32}, nil

	case KindBytes:
		dynamicOffset, err := peekUsize(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		length, err := peekUsize(data, dynamicOffset)
		if err != nil {
			return decodeResult{}, err
		}
		b, err := takeBytes(data, dynamicOffset+32, length, validate)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: NewBytesToken(b), newOffset: offset + 32}, nil

	case KindString:
		dynamicOffset, err := peekUsize(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		length, err := peekUsize(data, dynamicOffset)
		if err != nil {
			return decodeResult{}, err
		}
		b, err := takeBytes(data, dynamicOffset+32, length, validate)
		if err != nil {
			return decodeResult{}, err
		}
		// Lossy UTF-8 decode: invalid sequences become U+FFFD rather than
		// failing. On-chain data is adversarial and callers want
		// best-effort decoding (SPEC_FULL.md §4.3).
		return decodeResult{token: NewStringToken(toValidUTF8(b)), newOffset: offset + 32}, nil

	case KindArray:
		lenOffset, err := peekUsize(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		length, err := peekUsize(data, lenOffset)
		if err != nil {
			return decodeResult{}, err
		}

		tailOffset := lenOffset + 32
		tail := data[tailOffset:]

		tokens, err := reserveTokens(length, len(tail))
		if err != nil {
			return decodeResult{}, err
		}

		innerOffset := 0
		for i := 0; i < length; i++ {
			res, err := decodeParam(p.Elem, tail, innerOffset, validate)
			if err != nil {
				return decodeResult{}, err
			}
			innerOffset = res.newOffset
			tokens = append(tokens, res.token)
		}

		return decodeResult{token: NewArrayToken(tokens), newOffset: offset + 32}, nil

	case KindFixedArray:
		isDynamic := p.IsDynamic()

		var tail []byte
		var innerOffset int
		if isDynamic {
			headOffset, err := peekUsize(data, offset)
			if err != nil {
				return decodeResult{}, err
			}
			if headOffset > len(data) {
				return decodeResult{}, ErrInvalidData
			}
			tail = data[headOffset:]
			innerOffset = 0
		} else {
			tail = data
			innerOffset = offset
		}

		tokens, err := reserveTokens(p.Size, len(tail)-innerOffset)
		if err != nil {
			return decodeResult{}, err
		}

		for i := 0; i < p.Size; i++ {
			res, err := decodeParam(p.Elem, tail, innerOffset, validate)
			if err != nil {
				return decodeResult{}, err
			}
			innerOffset = res.newOffset
			tokens = append(tokens, res.token)
		}

		newOffset := innerOffset
		if isDynamic {
			newOffset = offset + 32
		}
		return decodeResult{token: NewFixedArrayToken(tokens), newOffset: newOffset}, nil

	case KindTuple:
		isDynamic := p.IsDynamic()

		var tail []byte
		var innerOffset int
		if isDynamic {
			headOffset, err := peekUsize(data, offset)
			if err != nil {
				return decodeResult{}, err
			}
			if headOffset > len(data) {
				return decodeResult{}, ErrInvalidData
			}
			tail = data[headOffset:]
			innerOffset = 0
		} else {
			tail = data
			innerOffset = offset
		}

		// The tuple's member count is a property of the declared schema,
		// not attacker-controlled input, so it is allocated directly
		// rather than through reserveTokens -- mirroring the distinction
		// the reference decoder draws between Vec::with_capacity (here)
		// and try_reserve_exact (Array, FixedArray).
		tokens := make([]Token, 0, len(p.Tuple))
		for i := range p.Tuple {
			res, err := decodeParam(&p.Tuple[i], tail, innerOffset, validate)
			if err != nil {
				return decodeResult{}, err
			}
			innerOffset = res.newOffset
			tokens = append(tokens, res.token)
		}

		newOffset := innerOffset
		if isDynamic {
			newOffset = offset + 32
		}
		return decodeResult{token: NewTupleToken(tokens), newOffset: newOffset}, nil

	default:
		return decodeResult{}, fmt.Errorf("%w: unrecognized param kind %d", ErrInvalidData, p.Kind)
	}
}

func peekUsize(data []byte, offset int) (int, error) {
	w, err := peekWord(data, offset)
	if err != nil {
		return 0, err
	}
	return asUsize(w)
}

func decodeImpl(types []ParamType, data []byte, validate bool) ([]Token, int, error) {
	emptyIsValid := true
	for i := range types {
		if !types[i].IsEmptyBytesValidEncoding() {
			emptyIsValid = false
			break
		}
	}
	if !emptyIsValid && len(data) == 0 {
		return nil, 0, errEmptyInput
	}

	// Unlike Array/FixedArray, the number of top-level declared types is
	// a property of the caller's static argument, never of attacker
	// data, so it is reserved directly rather than through
	// reserveTokens (which exists to bound attacker- or
	// schema-influenced lengths against the bytes available to back
	// them).
	tokens := make([]Token, 0, len(types))

	offset := 0
	for i := range types {
		res, err := decodeParam(&types[i], data, offset, validate)
		if err != nil {
			return nil, 0, err
		}
		offset = res.newOffset
		tokens = append(tokens, res.token)
	}

	if validate && offset != len(data) {
		return nil, 0, fmt.Errorf("%w: %d bytes of input left undecoded", ErrInvalidData, len(data)-offset)
	}

	return tokens, offset, nil
}

// DecodeValidate decodes data against types in strict mode: padding
// bytes must be zero, address upper bytes must be zero, and the entire
// buffer must be consumed.
func DecodeValidate(types []ParamType, data []byte) ([]Token, error) {
	tokens, _, err := decodeImpl(types, data, true)
	return tokens, err
}

// Decode decodes data against types in lenient mode: padding bytes are
// not inspected and trailing, undecoded input is tolerated.
func Decode(types []ParamType, data []byte) ([]Token, error) {
	tokens, _, err := decodeImpl(types, data, false)
	return tokens, err
}
