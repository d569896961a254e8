package modes

// CounterSequence is the lazy counter-block sequence CTR mode
// encrypts to build its keystream: CounterSequence(0), (1), (2), ...
// Being a pure function of the index rather than mutable state lets a
// single CTR value be driven concurrently, and lets Encrypt/Decrypt
// restart the sequence independently from the same starting point.
type CounterSequence func(index uint64) uint64

// NewCounterSequence builds a CounterSequence that yields
// combine(nonce, 0), combine(nonce, 1), combine(nonce, 2), ...
func NewCounterSequence(nonce uint64, combine func(nonce, index uint64) uint64) CounterSequence {
	return func(index uint64) uint64 {
		return combine(nonce, index)
	}
}

// NewXORCounter builds the canonical CTR counter sequence, combining
// the nonce with the block index by XOR.
func NewXORCounter(nonce uint64) CounterSequence {
	return NewCounterSequence(nonce, func(n, i uint64) uint64 { return n ^ i })
}

// NewAddCounter builds a CTR counter sequence that combines the nonce
// with the block index by addition mod 2^64, the alternative combiner
// some CTR deployments use instead of XOR.
func NewAddCounter(nonce uint64) CounterSequence {
	return NewCounterSequence(nonce, func(n, i uint64) uint64 { return n + i })
}
