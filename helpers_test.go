package bip38

import (
	"encoding/hex"
	"testing"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// secretBytes returns n as a 32-byte big-endian private key.
func secretBytes(n uint64) []byte {
	b := make([]byte, PrivateKeyLen)
	for i := PrivateKeyLen - 1; n > 0; i-- {
		b[i] = byte(n)
		n >>= 8
	}
	return b
}

func isZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

// recordWipes replaces wipe for the duration of the test and returns the
// list of buffers that were passed to it.
func recordWipes(t *testing.T) *[][]byte {
	var wiped [][]byte
	orig := wipe
	wipe = func(b []byte) {
		orig(b)
		wiped = append(wiped, b)
	}
	t.Cleanup(func() { wipe = orig })
	return &wiped
}
