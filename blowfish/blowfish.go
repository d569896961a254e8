// Package blowfish implements Bruce Schneier's Blowfish block cipher:
// the 16-round Feistel network, the 521-encryption key schedule, and
// the single-block Encrypt/Decrypt primitives that the modes package
// builds its streaming modes on top of.
package blowfish

import (
	"encoding/binary"

	"github.com/laenix/blowfish/blowfish/internal"
)

const (
	// BlockSize is the Blowfish block size in bytes.
	BlockSize = 8
	// MinKeySize is the smallest accepted key length in bytes.
	MinKeySize = 4
	// MaxKeySize is the largest accepted key length in bytes.
	MaxKeySize = 56
	// roundCount is the number of Feistel rounds per block.
	roundCount = 16
)

// Cipher holds one fully expanded Blowfish key schedule: the 18-word
// P-array and the four 256-word S-boxes. A *Cipher is immutable once
// returned by New and safe to share across any number of concurrent
// callers, provided each mode operation keeps its own feedback state
// (see the modes package).
type Cipher struct {
	p [18]uint32
	s [4][256]uint32
}

// New expands key into a Blowfish key schedule. key must be between
// MinKeySize and MaxKeySize bytes inclusive.
func New(key []byte) (*Cipher, error) {
	if len(key) < MinKeySize || len(key) > MaxKeySize {
		return nil, &KeyLengthError{Len: len(key)}
	}

	c := &Cipher{}
	c.initBoxes()
	c.expandKey(key)
	return c, nil
}

// BlockSize returns the cipher's block size. It exists so *Cipher
// satisfies modes.BlockCipher.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts exactly one 8-byte block.
func (c *Cipher) Encrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, &BlockLengthError{Len: len(block)}
	}

	l := binary.BigEndian.Uint32(block[0:4])
	r := binary.BigEndian.Uint32(block[4:8])
	l, r = c.encryptBlock(l, r)

	out := make([]byte, BlockSize)
	binary.BigEndian.PutUint32(out[0:4], l)
	binary.BigEndian.PutUint32(out[4:8], r)
	return out, nil
}

// Decrypt decrypts exactly one 8-byte block.
func (c *Cipher) Decrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, &BlockLengthError{Len: len(block)}
	}

	l := binary.BigEndian.Uint32(block[0:4])
	r := binary.BigEndian.Uint32(block[4:8])
	l, r = c.decryptBlock(l, r)

	out := make([]byte, BlockSize)
	binary.BigEndian.PutUint32(out[0:4], l)
	binary.BigEndian.PutUint32(out[4:8], r)
	return out, nil
}

// encryptBlockHook is called once per encryptBlock invocation. It exists
// so tests can verify the key schedule's 521-encryption count without
// instrumenting expandKey itself; production code leaves it nil.
var encryptBlockHook func()

// encryptBlock runs the 16-round Feistel network forward, P[0]..P[17].
func (c *Cipher) encryptBlock(l, r uint32) (uint32, uint32) {
	if encryptBlockHook != nil {
		encryptBlockHook()
	}
	for i := 0; i < roundCount; i++ {
		l ^= c.p[i]
		r ^= c.f(l)
		l, r = r, l
	}
	l, r = r, l
	r ^= c.p[16]
	l ^= c.p[17]
	return l, r
}

// decryptBlock runs the same network with the P-array consumed in
// reverse: P[17] down to P[2] in the rounds, then P[1] and P[0] as the
// final whitening.
func (c *Cipher) decryptBlock(l, r uint32) (uint32, uint32) {
	for i := 17; i > 1; i-- {
		l ^= c.p[i]
		r ^= c.f(l)
		l, r = r, l
	}
	l, r = r, l
	r ^= c.p[1]
	l ^= c.p[0]
	return l, r
}

// f is the Blowfish round function: split x into four bytes, index
// the four S-boxes, combine with addition mod 2^32 and XOR.
func (c *Cipher) f(x uint32) uint32 {
	a := (x >> 24) & 0xff
	b := (x >> 16) & 0xff
	cc := (x >> 8) & 0xff
	d := x & 0xff

	return ((c.s[0][a] + c.s[1][b]) ^ c.s[2][cc]) + c.s[3][d]
}

// initBoxes seeds the P-array and S-boxes with the fixed digits-of-pi
// constants, before any key material is mixed in.
func (c *Cipher) initBoxes() {
	copy(c.p[:], internal.PBox[:])
	copy(c.s[0][:], internal.SBox0[:])
	copy(c.s[1][:], internal.SBox1[:])
	copy(c.s[2][:], internal.SBox2[:])
	copy(c.s[3][:], internal.SBox3[:])
}

// expandKey runs the Blowfish key schedule: XOR the key, cycled, into
// the P-array, then overwrite every P-array and S-box entry in order
// by repeatedly encrypting a running all-zero block. This performs
// exactly 9 + 4*128 = 521 block encryptions regardless of key length.
func (c *Cipher) expandKey(key []byte) {
	j := 0
	for i := 0; i < 18; i++ {
		var word uint32
		for k := 0; k < 4; k++ {
			word = (word << 8) | uint32(key[j%len(key)])
			j++
		}
		c.p[i] ^= word
	}

	var l, r uint32
	for i := 0; i < 18; i += 2 {
		l, r = c.encryptBlock(l, r)
		c.p[i], c.p[i+1] = l, r
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < 256; j += 2 {
			l, r = c.encryptBlock(l, r)
			c.s[i][j], c.s[i][j+1] = l, r
		}
	}
}
