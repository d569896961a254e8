package modes

import "github.com/laenix/blowfish/modes/internal"

// PCBC implements propagating cipher block chaining mode: like CBC,
// but the chaining value fed into the next block is the XOR of that
// block's plaintext and ciphertext, not the ciphertext alone. A single
// bit error in one ciphertext block propagates into every block that
// follows it, rather than just the next one.
type PCBC struct {
	cipher BlockCipher
	iv     []byte
}

// NewPCBC wraps cipher in PCBC mode. iv must equal the cipher's block
// size.
func NewPCBC(cipher BlockCipher, iv []byte) (*PCBC, error) {
	blockSize := cipher.BlockSize()
	if len(iv) != blockSize {
		return nil, &IVLengthError{Len: len(iv), Want: blockSize}
	}

	return &PCBC{
		cipher: cipher,
		iv:     internal.DuplicateSlice(iv),
	}, nil
}

// Encrypt encrypts plaintext in PCBC mode. len(plaintext) must be a
// positive multiple of the block size; PCBC does no padding.
func (p *PCBC) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := p.cipher.BlockSize()
	if len(plaintext) == 0 || len(plaintext)%blockSize != 0 {
		return nil, &DataLengthError{Len: len(plaintext), BlockSize: blockSize}
	}

	state := internal.DuplicateSlice(p.iv)
	ciphertext := make([]byte, len(plaintext))
	block := make([]byte, blockSize)

	for i := 0; i < len(plaintext); i += blockSize {
		plainBlock := plaintext[i : i+blockSize]

		internal.XORBytes(block, plainBlock, state)
		encryptedBlock, err := p.cipher.Encrypt(block)
		if err != nil {
			return nil, err
		}
		copy(ciphertext[i:i+blockSize], encryptedBlock)

		internal.XORBytes(state, plainBlock, encryptedBlock)
	}

	return ciphertext, nil
}

// Decrypt decrypts ciphertext in PCBC mode. len(ciphertext) must be a
// positive multiple of the block size.
func (p *PCBC) Decrypt(ciphertext []byte) ([]byte, error) {
	blockSize := p.cipher.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, &DataLengthError{Len: len(ciphertext), BlockSize: blockSize}
	}

	state := internal.DuplicateSlice(p.iv)
	plaintext := make([]byte, len(ciphertext))

	for i := 0; i < len(ciphertext); i += blockSize {
		cipherBlock := ciphertext[i : i+blockSize]

		decryptedBlock, err := p.cipher.Decrypt(cipherBlock)
		if err != nil {
			return nil, err
		}

		plainBlock := plaintext[i : i+blockSize]
		internal.XORBytes(plainBlock, decryptedBlock, state)

		internal.XORBytes(state, plainBlock, cipherBlock)
	}

	return plaintext, nil
}

// BlockSize returns the underlying cipher's block size.
func (p *PCBC) BlockSize() int {
	return p.cipher.BlockSize()
}
