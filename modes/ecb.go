package modes

// ECB implements electronic codebook mode: every block is encrypted
// independently with no chaining. It is included for completeness and
// as the degenerate case the other modes build on; identical plaintext
// blocks always produce identical ciphertext blocks.
type ECB struct {
	cipher BlockCipher
}

// NewECB wraps cipher in ECB mode.
func NewECB(cipher BlockCipher) *ECB {
	return &ECB{cipher: cipher}
}

// Encrypt encrypts plaintext block by block. len(plaintext) must be a
// positive multiple of the block size; ECB does no padding.
func (e *ECB) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := e.cipher.BlockSize()
	if len(plaintext) == 0 || len(plaintext)%blockSize != 0 {
		return nil, &DataLengthError{Len: len(plaintext), BlockSize: blockSize}
	}

	ciphertext := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i += blockSize {
		block, err := e.cipher.Encrypt(plaintext[i : i+blockSize])
		if err != nil {
			return nil, err
		}
		copy(ciphertext[i:i+blockSize], block)
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext block by block. len(ciphertext) must be
// a positive multiple of the block size.
func (e *ECB) Decrypt(ciphertext []byte) ([]byte, error) {
	blockSize := e.cipher.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, &DataLengthError{Len: len(ciphertext), BlockSize: blockSize}
	}

	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += blockSize {
		block, err := e.cipher.Decrypt(ciphertext[i : i+blockSize])
		if err != nil {
			return nil, err
		}
		copy(plaintext[i:i+blockSize], block)
	}
	return plaintext, nil
}

// BlockSize returns the underlying cipher's block size.
func (e *ECB) BlockSize() int {
	return e.cipher.BlockSize()
}
