package blowfish

import (
	"errors"
	"fmt"
)

// Package-level sentinels so callers that only care about the error
// class can use errors.Is instead of errors.As.
var (
	ErrInvalidKeyLength   = errors.New("blowfish: invalid key length")
	ErrInvalidBlockLength = errors.New("blowfish: invalid block length")
)

// KeyLengthError reports a key outside [MinKeySize, MaxKeySize] bytes.
type KeyLengthError struct {
	Len int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("blowfish: key length %d outside [%d, %d] bytes", e.Len, MinKeySize, MaxKeySize)
}

func (e *KeyLengthError) Unwrap() error {
	return ErrInvalidKeyLength
}

// BlockLengthError reports a block that is not exactly BlockSize bytes.
type BlockLengthError struct {
	Len int
}

func (e *BlockLengthError) Error() string {
	return fmt.Sprintf("blowfish: block length %d, want %d", e.Len, BlockSize)
}

func (e *BlockLengthError) Unwrap() error {
	return ErrInvalidBlockLength
}
