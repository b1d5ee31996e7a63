package test

import "math/rand/v2"

const credentialAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomASCIIString returns a random alphanumeric string of minLen to maxLen
// characters, suitable as a throwaway password or token in tests.
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)

	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = credentialAlphabet[rand.IntN(len(credentialAlphabet))]
	}
	return string(buf)
}
