package abi

// roundUpNearestMultiple32 rounds v up to the next multiple of 32,
// handling v == 0 (returns 0). It is a direct instantiation of the
// teacher's generic Roundup[T constraints.Integer] (util.go).
func roundUpNearestMultiple32(v int) int {
	return Roundup(v, 32)
}

// checkZeroes fails with ErrInvalidData unless every byte of data is zero.
func checkZeroes(data []byte) error {
	for _, b := range data {
		if b != 0 {
			return ErrInvalidData
		}
	}
	return nil
}

// takeBytes returns a fresh, owned copy of data[offset : offset+length].
//
// When validate is true, the padded length is the next multiple of 32
// at or above length; the read additionally requires
// offset+paddedLength <= len(data) and that the padding bytes
// (data[offset+length : offset+paddedLength]) are all zero.
//
// When validate is false, only offset+length <= len(data) is required;
// padding bytes, if any, are not inspected.
func takeBytes(data []byte, offset, length int, validate bool) ([]byte, error) {
	if validate {
		paddedLength := roundUpNearestMultiple32(length)
		padded, err := peek(data, offset, paddedLength)
		if err != nil {
			return nil, err
		}
		if err := checkZeroes(padded[length:]); err != nil {
			return nil, err
		}
		out := make([]byte, length)
		copy(out, padded[:length])
		return out, nil
	}

	b, err := peek(data, offset, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, b)
	return out, nil
}
