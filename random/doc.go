// Package random provides seedable random sources for reproducible
// shuffles.
//
// [ChaCha] turns a ChaCha20 keystream (golang.org/x/crypto/chacha20) into a
// math/rand/v2 Source. The same seed always yields the same stream, on every
// platform:
//
//	r := random.NewSeeded(42)
//	collect.Shuffle(items, collect.WithRand(r))
//
// Sources and the *rand.Rand values wrapping them are not safe for concurrent
// use. Give each goroutine its own, or use the global math/rand/v2 functions.
package random
