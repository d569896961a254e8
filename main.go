// Command blowfish exercises every mode of operation in this
// module against a sample key and payload, printing hex-encoded
// ciphertext for each. It is a runnable sanity check, not a tool for
// encrypting real data.
package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/laenix/blowfish/blowfish"
	"github.com/laenix/blowfish/modes"
)

func main() {
	key := []byte("this ist ein key")
	plaintext := []byte("Blowfish is a 64-bit Feistel cipher with a key-dependent state.")

	// Pad to a block multiple only for the modes that require it; the
	// streaming modes (CFB/OFB/CTR) get the unpadded message directly.
	padded := append([]byte{}, plaintext...)
	for len(padded)%blowfish.BlockSize != 0 {
		padded = append(padded, 0)
	}

	cipher, err := blowfish.New(key)
	if err != nil {
		log.Fatalf("blowfish.New: %v", err)
	}

	iv := make([]byte, blowfish.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		log.Fatalf("rand.Read: %v", err)
	}

	demonstrateECB(cipher, padded)
	demonstrateCBC(cipher, padded, iv)
	demonstratePCBC(cipher, padded, iv)
	demonstrateCFB(cipher, plaintext, iv)
	demonstrateOFB(cipher, plaintext, iv)
	demonstrateCTR(cipher, plaintext)
}

func demonstrateECB(cipher *blowfish.Cipher, data []byte) {
	ecb := modes.NewECB(cipher)
	ciphertext, err := ecb.Encrypt(data)
	if err != nil {
		log.Fatalf("ECB encrypt: %v", err)
	}
	fmt.Printf("ECB:  %s\n", hex.EncodeToString(ciphertext))
}

func demonstrateCBC(cipher *blowfish.Cipher, data, iv []byte) {
	cbc, err := modes.NewCBC(cipher, iv)
	if err != nil {
		log.Fatalf("NewCBC: %v", err)
	}
	ciphertext, err := cbc.Encrypt(data)
	if err != nil {
		log.Fatalf("CBC encrypt: %v", err)
	}
	fmt.Printf("CBC:  %s\n", hex.EncodeToString(ciphertext))
}

func demonstratePCBC(cipher *blowfish.Cipher, data, iv []byte) {
	pcbc, err := modes.NewPCBC(cipher, iv)
	if err != nil {
		log.Fatalf("NewPCBC: %v", err)
	}
	ciphertext, err := pcbc.Encrypt(data)
	if err != nil {
		log.Fatalf("PCBC encrypt: %v", err)
	}
	fmt.Printf("PCBC: %s\n", hex.EncodeToString(ciphertext))
}

func demonstrateCFB(cipher *blowfish.Cipher, data, iv []byte) {
	cfb, err := modes.NewCFB(cipher, iv)
	if err != nil {
		log.Fatalf("NewCFB: %v", err)
	}
	ciphertext, err := cfb.Encrypt(data)
	if err != nil {
		log.Fatalf("CFB encrypt: %v", err)
	}
	fmt.Printf("CFB:  %s\n", hex.EncodeToString(ciphertext))
}

func demonstrateOFB(cipher *blowfish.Cipher, data, iv []byte) {
	ofb, err := modes.NewOFB(cipher, iv)
	if err != nil {
		log.Fatalf("NewOFB: %v", err)
	}
	ciphertext, err := ofb.Encrypt(data)
	if err != nil {
		log.Fatalf("OFB encrypt: %v", err)
	}
	fmt.Printf("OFB:  %s\n", hex.EncodeToString(ciphertext))
}

func demonstrateCTR(cipher *blowfish.Cipher, data []byte) {
	var nonceBytes [8]byte
	if _, err := rand.Read(nonceBytes[:]); err != nil {
		log.Fatalf("rand.Read: %v", err)
	}
	nonce := binary.BigEndian.Uint64(nonceBytes[:])

	ctr, err := modes.NewCTR(cipher, modes.NewXORCounter(nonce))
	if err != nil {
		log.Fatalf("NewCTR: %v", err)
	}
	ciphertext, err := ctr.Encrypt(data)
	if err != nil {
		log.Fatalf("CTR encrypt: %v", err)
	}
	fmt.Printf("CTR:  %s\n", hex.EncodeToString(ciphertext))
}
