package bip38

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

// ChecksumLen is the length of the checksum appended to base58 payloads.
const ChecksumLen = 4

// Hash256 does two rounds of SHA256 hashing.
func Hash256(data []byte) []byte {
	h := sha256.Sum256(data)
	h1 := sha256.Sum256(h[:])
	wipe(h[:])
	return h1[:]
}

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sha := calcHash(buf, sha256.New())
	defer wipe(sha)
	return calcHash(sha, ripemd160.New())
}

// Checksum returns the first four bytes of Hash256(data).
func Checksum(data []byte) [ChecksumLen]byte {
	var sum [ChecksumLen]byte
	h := Hash256(data)
	copy(sum[:], h)
	wipe(h)
	return sum
}
