package modes

import "github.com/laenix/blowfish/modes/internal"

// OFB implements output feedback mode: the cipher's own output, not
// the ciphertext, is fed back into the register, producing a keystream
// independent of the data. Encrypt and Decrypt are the same operation.
// OFB needs no padding; it accepts data of any length.
type OFB struct {
	cipher BlockCipher
	iv     []byte
}

// NewOFB wraps cipher in OFB mode. iv must equal the cipher's block
// size.
func NewOFB(cipher BlockCipher, iv []byte) (*OFB, error) {
	blockSize := cipher.BlockSize()
	if len(iv) != blockSize {
		return nil, &IVLengthError{Len: len(iv), Want: blockSize}
	}

	return &OFB{
		cipher: cipher,
		iv:     internal.DuplicateSlice(iv),
	}, nil
}

// Encrypt XORs plaintext of any length with the OFB keystream.
func (o *OFB) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := o.cipher.BlockSize()
	ciphertext := make([]byte, len(plaintext))

	register := internal.DuplicateSlice(o.iv)

	i := 0
	for ; i+blockSize <= len(plaintext); i += blockSize {
		encryptedRegister, err := o.cipher.Encrypt(register)
		if err != nil {
			return nil, err
		}

		internal.XORBytes(ciphertext[i:i+blockSize], plaintext[i:i+blockSize], encryptedRegister)
		copy(register, encryptedRegister)
	}

	if i < len(plaintext) {
		encryptedRegister, err := o.cipher.Encrypt(register)
		if err != nil {
			return nil, err
		}
		internal.XORBytes(ciphertext[i:], plaintext[i:], encryptedRegister)
	}

	return ciphertext, nil
}

// Decrypt is identical to Encrypt: OFB XORs data with a keystream that
// doesn't depend on the data itself.
func (o *OFB) Decrypt(ciphertext []byte) ([]byte, error) {
	return o.Encrypt(ciphertext)
}

// BlockSize returns the underlying cipher's block size.
func (o *OFB) BlockSize() int {
	return o.cipher.BlockSize()
}
