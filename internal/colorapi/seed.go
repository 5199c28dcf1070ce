package colorapi

import "math/rand"

const hexDigits = "0123456789ABCDEF"

// SeedLength is the number of hex digits in a seed
const SeedLength = 6

// SeedSource produces seeds for scheme requests
type SeedSource func() string

// RandomSeed returns six hex digits, each drawn uniformly from 0-9A-F
func RandomSeed() string {
	b := make([]byte, SeedLength)
	for i := range b {
		b[i] = hexDigits[rand.Intn(len(hexDigits))]
	}
	return string(b)
}
