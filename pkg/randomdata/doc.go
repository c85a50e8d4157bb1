// Package randomdata generates pseudo-random test data: strings over fixed
// alphabets, bounded integers, slice picks, and UUID identifiers.
//
// The generator is a single math/rand source behind a mutex, so the helpers
// are safe to call from parallel tests. Seed pins the sequence for
// reproducing a failing run; Reset returns to time-based seeding. The data
// is not cryptographically random and must never be used for secrets.
package randomdata
