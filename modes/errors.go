package modes

import (
	"errors"
	"fmt"
)

// Package-level sentinels for callers that only care about the error
// class, usable with errors.Is.
var (
	ErrInvalidIVLength   = errors.New("modes: invalid IV length")
	ErrInvalidDataLength = errors.New("modes: invalid data length")
	ErrInvalidBlockSize  = errors.New("modes: invalid block size")
)

// IVLengthError reports an IV that does not match the underlying
// cipher's block size.
type IVLengthError struct {
	Len  int
	Want int
}

func (e *IVLengthError) Error() string {
	return fmt.Sprintf("modes: IV length %d, want %d", e.Len, e.Want)
}

func (e *IVLengthError) Unwrap() error {
	return ErrInvalidIVLength
}

// DataLengthError reports plaintext or ciphertext whose length is not
// a positive multiple of the block size, for the modes (ECB, CBC, PCBC)
// that require exact, non-empty block multiples.
type DataLengthError struct {
	Len       int
	BlockSize int
}

func (e *DataLengthError) Error() string {
	return fmt.Sprintf("modes: data length %d is not a positive multiple of block size %d", e.Len, e.BlockSize)
}

func (e *DataLengthError) Unwrap() error {
	return ErrInvalidDataLength
}

// BlockSizeError reports a cipher or CFB segment size this package
// cannot drive: either the underlying cipher's block size doesn't fit
// the mode (CTR requires an 8-byte block to match its uint64 counter
// contract), or a requested CFB segment size is out of [1, blockSize].
type BlockSizeError struct {
	Size int
}

func (e *BlockSizeError) Error() string {
	return fmt.Sprintf("modes: unsupported block size %d", e.Size)
}

func (e *BlockSizeError) Unwrap() error {
	return ErrInvalidBlockSize
}
