// Package runid generates short random identifiers for tagging check runs
// in logs.
package runid

import "crypto/rand"

// 64 characters so each ID byte maps to the alphabet with a single mask.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

// Length of a run ID in characters. 12 characters of 6 bits each is plenty
// for distinguishing runs within one log stream.
const Length = 12

// New returns a fresh 12-character run identifier drawn from a URL-safe
// alphabet.
func New() string {
	var buf [Length]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("runid: failed to read random bytes: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = alphabet[b&63]
	}
	return string(buf[:])
}
