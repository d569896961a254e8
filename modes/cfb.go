package modes

import "github.com/laenix/blowfish/modes/internal"

// CFB implements cipher feedback mode: the cipher encrypts a shift
// register seeded with the IV, and the output is XORed with the
// plaintext to produce each segment of ciphertext, which is then fed
// back into the register. CFB needs no padding; it accepts data of any
// length.
type CFB struct {
	cipher BlockCipher
	iv     []byte
	// segmentSize is the number of bytes fed back per step: usually the
	// block size, but it can be narrowed down to one byte (CFB-8).
	// Bit-level segments such as CFB-1 are not supported.
	segmentSize int
}

// NewCFB wraps cipher in CFB mode with full-block feedback. iv must
// equal the cipher's block size.
func NewCFB(cipher BlockCipher, iv []byte) (*CFB, error) {
	blockSize := cipher.BlockSize()
	if len(iv) != blockSize {
		return nil, &IVLengthError{Len: len(iv), Want: blockSize}
	}

	return &CFB{
		cipher:      cipher,
		iv:          internal.DuplicateSlice(iv),
		segmentSize: blockSize,
	}, nil
}

// WithSegmentSize sets the CFB feedback segment, in bytes, and returns
// the same *CFB. segmentSize must be in [1, BlockSize()].
func (c *CFB) WithSegmentSize(segmentSize int) (*CFB, error) {
	if segmentSize <= 0 || segmentSize > c.cipher.BlockSize() {
		return nil, &BlockSizeError{Size: segmentSize}
	}
	c.segmentSize = segmentSize
	return c, nil
}

// Encrypt encrypts plaintext of any length in CFB mode.
func (c *CFB) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	ciphertext := make([]byte, len(plaintext))

	register := internal.DuplicateSlice(c.iv)

	for i := 0; i < len(plaintext); i += c.segmentSize {
		encrypted, err := c.cipher.Encrypt(register)
		if err != nil {
			return nil, err
		}

		n := c.segmentSize
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}

		internal.XORBytes(ciphertext[i:i+n], plaintext[i:i+n], encrypted[:n])

		if blockSize > c.segmentSize {
			copy(register, register[c.segmentSize:])
			copy(register[blockSize-c.segmentSize:], ciphertext[i:i+n])
		} else {
			copy(register, ciphertext[i:i+n])
		}
	}

	return ciphertext, nil
}

// Decrypt decrypts ciphertext of any length in CFB mode.
func (c *CFB) Decrypt(ciphertext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	plaintext := make([]byte, len(ciphertext))

	register := internal.DuplicateSlice(c.iv)

	for i := 0; i < len(ciphertext); i += c.segmentSize {
		encrypted, err := c.cipher.Encrypt(register)
		if err != nil {
			return nil, err
		}

		n := c.segmentSize
		if i+n > len(ciphertext) {
			n = len(ciphertext) - i
		}

		internal.XORBytes(plaintext[i:i+n], ciphertext[i:i+n], encrypted[:n])

		if blockSize > c.segmentSize {
			copy(register, register[c.segmentSize:])
			copy(register[blockSize-c.segmentSize:], ciphertext[i:i+n])
		} else {
			copy(register, ciphertext[i:i+n])
		}
	}

	return plaintext, nil
}

// BlockSize returns the underlying cipher's block size.
func (c *CFB) BlockSize() int {
	return c.cipher.BlockSize()
}
