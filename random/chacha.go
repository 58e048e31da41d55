package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"

	"golang.org/x/crypto/chacha20"
)

// Options configures a [ChaCha] source.
type Options struct {
	// Key seeds the keystream.
	Key [chacha20.KeySize]byte

	// Nonce selects one of many independent streams for the same Key.
	Nonce [chacha20.NonceSize]byte
}

// DefaultOptions returns Options with a Key read from crypto/rand and a zero
// Nonce, for sources that need to be unpredictable rather than reproducible.
func DefaultOptions() (Options, error) {
	var opts Options
	if _, err := rand.Read(opts.Key[:]); err != nil {
		return Options{}, fmt.Errorf("random: failed to read key: %w", err)
	}
	return opts, nil
}

// ChaCha is a math/rand/v2 Source backed by a ChaCha20 keystream.
type ChaCha struct {
	cipher *chacha20.Cipher
	buf    [64]byte
	pos    int
}

// NewChaCha creates a source for opts.
func NewChaCha(opts Options) (*ChaCha, error) {
	c, err := chacha20.NewUnauthenticatedCipher(opts.Key[:], opts.Nonce[:])
	if err != nil {
		return nil, fmt.Errorf("random: failed to create chacha20 stream: %w", err)
	}
	s := &ChaCha{cipher: c}
	s.pos = len(s.buf)
	return s, nil
}

// Uint64 returns the next 8 bytes of keystream as a little-endian integer.
// It implements [mrand.Source].
func (s *ChaCha) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		clear(s.buf[:])
		s.cipher.XORKeyStream(s.buf[:], s.buf[:])
		s.pos = 0
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

// NewSeeded returns a *rand.Rand whose stream is fully determined by seed.
func NewSeeded(seed uint64) *mrand.Rand {
	var opts Options
	binary.LittleEndian.PutUint64(opts.Key[:], seed)
	s, err := NewChaCha(opts)
	if err != nil {
		// Key and nonce are fixed-size arrays, so construction cannot fail.
		panic(err)
	}
	return mrand.New(s)
}
