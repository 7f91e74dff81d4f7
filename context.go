package bip38

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec"
)

const (
	// PrivateKeyLen is the length of a raw secp256k1 private key.
	PrivateKeyLen = 32

	compressedPubKeyLen   = 33
	uncompressedPubKeyLen = 65
)

// Context holds the curve state shared by all operations. It is immutable
// once created and safe for concurrent use.
type Context struct {
	curve *btcec.KoblitzCurve
}

var (
	defaultContext     *Context
	defaultContextOnce sync.Once
)

// DefaultContext returns the process-wide secp256k1 context, creating it
// on first use.
func DefaultContext() *Context {
	defaultContextOnce.Do(func() {
		defaultContext = &Context{curve: btcec.S256()}
	})
	return defaultContext
}

// validScalar returns true if d is in [1, N-1].
func (c *Context) validScalar(d *big.Int) bool {
	return d.Sign() > 0 && d.Cmp(c.curve.N) < 0
}

// PublicKey derives the serialized public key for the private key. The result
// is 33 bytes long when compressed is true and 65 bytes long otherwise.
func (c *Context) PublicKey(privateKey []byte, compressed bool) ([]byte, error) {
	if len(privateKey) != PrivateKeyLen {
		return nil, ErrInvalidKeyLength
	}
	d := new(big.Int).SetBytes(privateKey)
	defer wipeInt(d)
	if !c.validScalar(d) {
		return nil, fmt.Errorf("%w: private key is not a valid secp256k1 scalar", ErrKeyDerivation)
	}

	priv, pub := btcec.PrivKeyFromBytes(c.curve, privateKey)
	defer wipeInt(priv.D)
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}
