package modes

import "github.com/laenix/blowfish/modes/internal"

// CBC implements cipher block chaining mode: each plaintext block is
// XORed with the previous ciphertext block (or the IV, for the first
// block) before encryption.
type CBC struct {
	cipher BlockCipher
	iv     []byte
}

// NewCBC wraps cipher in CBC mode. iv must equal the cipher's block
// size.
func NewCBC(cipher BlockCipher, iv []byte) (*CBC, error) {
	blockSize := cipher.BlockSize()
	if len(iv) != blockSize {
		return nil, &IVLengthError{Len: len(iv), Want: blockSize}
	}

	return &CBC{
		cipher: cipher,
		iv:     internal.DuplicateSlice(iv),
	}, nil
}

// Encrypt encrypts plaintext in CBC mode. len(plaintext) must be a
// positive multiple of the block size; CBC does no padding.
func (c *CBC) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	if len(plaintext) == 0 || len(plaintext)%blockSize != 0 {
		return nil, &DataLengthError{Len: len(plaintext), BlockSize: blockSize}
	}

	prev := internal.DuplicateSlice(c.iv)
	ciphertext := make([]byte, len(plaintext))

	for i := 0; i < len(plaintext); i += blockSize {
		block := make([]byte, blockSize)
		internal.XORBytes(block, plaintext[i:i+blockSize], prev)

		encryptedBlock, err := c.cipher.Encrypt(block)
		if err != nil {
			return nil, err
		}

		copy(ciphertext[i:i+blockSize], encryptedBlock)
		copy(prev, encryptedBlock)
	}

	return ciphertext, nil
}

// Decrypt decrypts ciphertext in CBC mode. len(ciphertext) must be a
// positive multiple of the block size.
func (c *CBC) Decrypt(ciphertext []byte) ([]byte, error) {
	blockSize := c.cipher.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, &DataLengthError{Len: len(ciphertext), BlockSize: blockSize}
	}

	prev := internal.DuplicateSlice(c.iv)
	plaintext := make([]byte, len(ciphertext))

	for i := 0; i < len(ciphertext); i += blockSize {
		decryptedBlock, err := c.cipher.Decrypt(ciphertext[i : i+blockSize])
		if err != nil {
			return nil, err
		}

		internal.XORBytes(plaintext[i:i+blockSize], decryptedBlock, prev)
		copy(prev, ciphertext[i:i+blockSize])
	}

	return plaintext, nil
}

// BlockSize returns the underlying cipher's block size.
func (c *CBC) BlockSize() int {
	return c.cipher.BlockSize()
}
