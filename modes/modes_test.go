package modes_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"testing"

	"github.com/laenix/blowfish/blowfish"
	"github.com/laenix/blowfish/modes"
)

func newTestCipher(t *testing.T) *blowfish.Cipher {
	t.Helper()
	c, err := blowfish.New([]byte("this ist ein key"))
	if err != nil {
		t.Fatalf("blowfish.New: %v", err)
	}
	return c
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return b
}

// blockMultipleData mirrors the reference suite's 500-block random
// payload used to exercise the block-multiple modes.
func blockMultipleData(t *testing.T) []byte {
	return randomBytes(t, 500*8)
}

func TestECBRoundTrip(t *testing.T) {
	cipher := newTestCipher(t)
	data := blockMultipleData(t)

	ecb := modes.NewECB(cipher)

	encrypted, err := ecb.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	decrypted, err := ecb.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(data, decrypted) {
		t.Error("round trip mismatch")
	}
}

func TestECBRejectsPartialBlock(t *testing.T) {
	cipher := newTestCipher(t)
	ecb := modes.NewECB(cipher)

	if _, err := ecb.Encrypt(make([]byte, 9)); err == nil {
		t.Error("expected error for non-block-multiple input")
	}
}

func TestECBRejectsEmptyInput(t *testing.T) {
	cipher := newTestCipher(t)
	ecb := modes.NewECB(cipher)

	if _, err := ecb.Encrypt(nil); err == nil {
		t.Error("expected error for zero-length input")
	}
	if _, err := ecb.Decrypt(nil); err == nil {
		t.Error("expected error for zero-length input")
	}
}

func TestCBCRoundTrip(t *testing.T) {
	cipher := newTestCipher(t)
	data := blockMultipleData(t)
	iv := randomBytes(t, cipher.BlockSize())

	cbc, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewCBC: %v", err)
	}

	encrypted, err := cbc.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	cbcDecrypt, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewCBC: %v", err)
	}
	decrypted, err := cbcDecrypt.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(data, decrypted) {
		t.Error("round trip mismatch")
	}
}

func TestCBCRejectsBadIVLength(t *testing.T) {
	cipher := newTestCipher(t)
	if _, err := modes.NewCBC(cipher, make([]byte, 3)); err == nil {
		t.Error("expected error for wrong-length IV")
	}
}

func TestCBCRejectsEmptyInput(t *testing.T) {
	cipher := newTestCipher(t)
	iv := randomBytes(t, cipher.BlockSize())
	cbc, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewCBC: %v", err)
	}

	if _, err := cbc.Encrypt(nil); err == nil {
		t.Error("expected error for zero-length input")
	}
	if _, err := cbc.Decrypt(nil); err == nil {
		t.Error("expected error for zero-length input")
	}
}

func TestPCBCRoundTrip(t *testing.T) {
	cipher := newTestCipher(t)
	data := blockMultipleData(t)
	iv := randomBytes(t, cipher.BlockSize())

	enc, err := modes.NewPCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewPCBC: %v", err)
	}
	encrypted, err := enc.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	dec, err := modes.NewPCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewPCBC: %v", err)
	}
	decrypted, err := dec.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(data, decrypted) {
		t.Error("round trip mismatch")
	}
}

func TestPCBCRejectsEmptyInput(t *testing.T) {
	cipher := newTestCipher(t)
	iv := randomBytes(t, cipher.BlockSize())
	pcbc, err := modes.NewPCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewPCBC: %v", err)
	}

	if _, err := pcbc.Encrypt(nil); err == nil {
		t.Error("expected error for zero-length input")
	}
	if _, err := pcbc.Decrypt(nil); err == nil {
		t.Error("expected error for zero-length input")
	}
}

func TestPCBCPropagatesErrors(t *testing.T) {
	// A single flipped ciphertext bit should corrupt every block that
	// follows it, not just the next one, distinguishing PCBC from CBC.
	cipher := newTestCipher(t)
	data := blockMultipleData(t)[:8*4]
	iv := randomBytes(t, cipher.BlockSize())

	enc, err := modes.NewPCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewPCBC: %v", err)
	}
	encrypted, err := enc.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	encrypted[0] ^= 0x01

	dec, err := modes.NewPCBC(cipher, iv)
	if err != nil {
		t.Fatalf("NewPCBC: %v", err)
	}
	decrypted, err := dec.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	lastBlock := decrypted[len(decrypted)-8:]
	wantLastBlock := data[len(data)-8:]
	if bytes.Equal(lastBlock, wantLastBlock) {
		t.Error("expected corruption to propagate to the final block under PCBC")
	}
}

func extraByteSizes() []int {
	return []int{0, 1, 2, 3, 4, 5, 6, 7}
}

func TestCFBRoundTrip(t *testing.T) {
	cipher := newTestCipher(t)
	base := blockMultipleData(t)
	iv := randomBytes(t, cipher.BlockSize())

	for _, extra := range extraByteSizes() {
		data := append(append([]byte{}, base...), randomBytes(t, extra)...)

		enc, err := modes.NewCFB(cipher, iv)
		if err != nil {
			t.Fatalf("NewCFB: %v", err)
		}
		encrypted, err := enc.Encrypt(data)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		dec, err := modes.NewCFB(cipher, iv)
		if err != nil {
			t.Fatalf("NewCFB: %v", err)
		}
		decrypted, err := dec.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if !bytes.Equal(data, decrypted) {
			t.Errorf("extra=%d: round trip mismatch", extra)
		}
	}
}

func TestCFBSegmentSize(t *testing.T) {
	cipher := newTestCipher(t)
	iv := randomBytes(t, cipher.BlockSize())
	data := randomBytes(t, 37)

	enc, err := modes.NewCFB(cipher, iv)
	if err != nil {
		t.Fatalf("NewCFB: %v", err)
	}
	if _, err := enc.WithSegmentSize(1); err != nil {
		t.Fatalf("WithSegmentSize: %v", err)
	}
	encrypted, err := enc.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	dec, err := modes.NewCFB(cipher, iv)
	if err != nil {
		t.Fatalf("NewCFB: %v", err)
	}
	if _, err := dec.WithSegmentSize(1); err != nil {
		t.Fatalf("WithSegmentSize: %v", err)
	}
	decrypted, err := dec.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(data, decrypted) {
		t.Error("round trip mismatch with segment size 1")
	}

	if _, err := enc.WithSegmentSize(0); err == nil {
		t.Error("expected error for zero segment size")
	}
	if _, err := enc.WithSegmentSize(cipher.BlockSize() + 1); err == nil {
		t.Error("expected error for segment size larger than block size")
	}
}

func TestOFBRoundTrip(t *testing.T) {
	cipher := newTestCipher(t)
	base := blockMultipleData(t)
	iv := randomBytes(t, cipher.BlockSize())

	for _, extra := range extraByteSizes() {
		data := append(append([]byte{}, base...), randomBytes(t, extra)...)

		enc, err := modes.NewOFB(cipher, iv)
		if err != nil {
			t.Fatalf("NewOFB: %v", err)
		}
		encrypted, err := enc.Encrypt(data)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		dec, err := modes.NewOFB(cipher, iv)
		if err != nil {
			t.Fatalf("NewOFB: %v", err)
		}
		decrypted, err := dec.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if !bytes.Equal(data, decrypted) {
			t.Errorf("extra=%d: round trip mismatch", extra)
		}
	}
}

func TestCTRRoundTrip(t *testing.T) {
	cipher := newTestCipher(t)
	base := blockMultipleData(t)

	var nonceBytes [8]byte
	if _, err := rand.Read(nonceBytes[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	nonce := binary.BigEndian.Uint64(nonceBytes[:])

	for _, extra := range extraByteSizes() {
		data := append(append([]byte{}, base...), randomBytes(t, extra)...)

		enc, err := modes.NewCTR(cipher, modes.NewXORCounter(nonce))
		if err != nil {
			t.Fatalf("NewCTR: %v", err)
		}
		encrypted, err := enc.Encrypt(data)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		dec, err := modes.NewCTR(cipher, modes.NewXORCounter(nonce))
		if err != nil {
			t.Fatalf("NewCTR: %v", err)
		}
		decrypted, err := dec.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if !bytes.Equal(data, decrypted) {
			t.Errorf("extra=%d: round trip mismatch", extra)
		}
	}
}

func TestCTRAddCounter(t *testing.T) {
	cipher := newTestCipher(t)
	data := blockMultipleData(t)

	enc, err := modes.NewCTR(cipher, modes.NewAddCounter(42))
	if err != nil {
		t.Fatalf("NewCTR: %v", err)
	}
	encrypted, err := enc.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	dec, err := modes.NewCTR(cipher, modes.NewAddCounter(42))
	if err != nil {
		t.Fatalf("NewCTR: %v", err)
	}
	decrypted, err := dec.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(data, decrypted) {
		t.Error("round trip mismatch with additive counter")
	}
}

// TestConcurrentModeUsage drives many independent mode operations
// against one shared *blowfish.Cipher from concurrent goroutines,
// verifying that no feedback state leaks between them.
func TestConcurrentModeUsage(t *testing.T) {
	cipher := newTestCipher(t)
	data := blockMultipleData(t)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			iv := randomBytes(t, cipher.BlockSize())
			enc, err := modes.NewCBC(cipher, iv)
			if err != nil {
				errs <- err
				return
			}
			encrypted, err := enc.Encrypt(data)
			if err != nil {
				errs <- err
				return
			}

			dec, err := modes.NewCBC(cipher, iv)
			if err != nil {
				errs <- err
				return
			}
			decrypted, err := dec.Decrypt(encrypted)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(data, decrypted) {
				errs <- fmt.Errorf("worker %d: round trip mismatch", i)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent worker failed: %v", err)
		}
	}
}
