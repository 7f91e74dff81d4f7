package bip38

import (
	"crypto/subtle"
	"math/big"
	"runtime"
)

// wipe is the single clearing routine used for secret buffers. Tests swap it
// to observe which buffers get cleared.
var wipe = zeroBytes

// zeroBytes overwrites b with zeros.
// subtle.ConstantTimeCopy keeps the compiler from dropping the stores.
func zeroBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}

// wipeAll clears every buffer in bufs.
func wipeAll(bufs ...[]byte) {
	for _, b := range bufs {
		wipe(b)
	}
}

// wipeInt clears the words backing n and sets it to zero.
func wipeInt(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	n.SetInt64(0)
}
