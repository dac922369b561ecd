package abi

import "errors"

// ErrInvalidData is the single structural failure signal for the ABI
// decoder: bounds overflow, bad padding, a malformed bool word, an
// offset beyond 2^32-1, or a reservation request the buffer could not
// possibly back. Every such failure is this sentinel, returned as is or
// wrapped with fmt.Errorf("%w: ..."), rather than a new kind.
var ErrInvalidData = errors.New("abi: invalid data")

// EmptyInputError is returned instead of ErrInvalidData when the input
// buffer is empty and at least one declared type requires non-empty
// input. It carries a message aimed at callers of JSON-RPC endpoints,
// which commonly return "0x" when the contract or method being called
// does not exist.
type EmptyInputError struct {
	msg string
}

func (e *EmptyInputError) Error() string { return e.msg }

var errEmptyInput = &EmptyInputError{
	msg: "abi: please ensure the contract and method you're calling exist! " +
		"failed to decode empty bytes. if you're using jsonrpc this is " +
		"likely due to jsonrpc returning `0x` in case contract or method " +
		"don't exist",
}
