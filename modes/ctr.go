package modes

import (
	"encoding/binary"

	"github.com/laenix/blowfish/modes/internal"
)

// CTR implements counter mode: each keystream block comes from
// encrypting the next value of a CounterSequence, independent of any
// previous block. Encrypt and Decrypt are the same operation. CTR
// needs no padding; it accepts data of any length.
type CTR struct {
	cipher BlockCipher
	seq    CounterSequence
}

// NewCTR wraps cipher in CTR mode, drawing counter blocks from seq.
// The cipher's block size must be 8 bytes, matching the uint64 counter
// contract CounterSequence exposes.
func NewCTR(cipher BlockCipher, seq CounterSequence) (*CTR, error) {
	blockSize := cipher.BlockSize()
	if blockSize != 8 {
		return nil, &BlockSizeError{Size: blockSize}
	}

	return &CTR{cipher: cipher, seq: seq}, nil
}

// Encrypt XORs plaintext of any length with the CTR keystream.
func (c *CTR) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	ciphertext := make([]byte, len(plaintext))
	counterBlock := make([]byte, blockSize)

	index := uint64(0)
	for i := 0; i < len(plaintext); i += blockSize {
		binary.BigEndian.PutUint64(counterBlock, c.seq(index))
		index++

		encryptedCounter, err := c.cipher.Encrypt(counterBlock)
		if err != nil {
			return nil, err
		}

		n := blockSize
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}

		internal.XORBytes(ciphertext[i:i+n], plaintext[i:i+n], encryptedCounter[:n])
	}

	return ciphertext, nil
}

// Decrypt is identical to Encrypt: CTR XORs data with a keystream that
// doesn't depend on the data itself.
func (c *CTR) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.Encrypt(ciphertext)
}

// BlockSize returns the underlying cipher's block size.
func (c *CTR) BlockSize() int {
	return c.cipher.BlockSize()
}
