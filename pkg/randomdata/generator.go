package randomdata

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	alphaChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
	alnumChars = alphaChars + digitChars
)

var (
	mu  sync.Mutex
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed reseeds the generator. Tests that need reproducible data call Seed
// with a fixed value and get the same sequence on every run.
func Seed(seed int64) {
	mu.Lock()
	rnd = rand.New(rand.NewSource(seed))
	mu.Unlock()
}

// Reset reseeds the generator from the current time, undoing a fixed Seed.
func Reset() {
	Seed(time.Now().UnixNano())
}

// String returns n pseudo-random characters drawn from letters and digits.
func String(n int) string {
	return fromAlphabet(alnumChars, n)
}

// Alpha returns n pseudo-random letters.
func Alpha(n int) string {
	return fromAlphabet(alphaChars, n)
}

// Digits returns n pseudo-random decimal digits.
func Digits(n int) string {
	return fromAlphabet(digitChars, n)
}

func fromAlphabet(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	mu.Lock()
	for i := range buf {
		buf[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	mu.Unlock()
	return string(buf)
}

// Int returns a pseudo-random integer in [min, max], both bounds inclusive.
// Panics when min > max to enforce fail-fast test setup.
func Int(min, max int) int {
	if min > max {
		panic(fmt.Errorf("randomdata: invalid range [%d, %d]", min, max))
	}
	mu.Lock()
	defer mu.Unlock()
	return min + rnd.Intn(max-min+1)
}

// IntSlice returns n pseudo-random integers, each in [min, max].
func IntSlice(n, min, max int) []int {
	if n <= 0 {
		return nil
	}
	values := make([]int, n)
	for i := range values {
		values[i] = Int(min, max)
	}
	return values
}

// Pick returns a pseudo-random element of values. Panics on an empty slice.
func Pick[T any](values []T) T {
	if len(values) == 0 {
		panic(fmt.Errorf("randomdata: cannot pick from an empty slice"))
	}
	mu.Lock()
	defer mu.Unlock()
	return values[rnd.Intn(len(values))]
}

// UUID returns a random version 4 UUID string for identifier-shaped data.
func UUID() string {
	return uuid.NewString()
}
