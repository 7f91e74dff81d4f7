package bip38

import (
	"crypto/aes"
	"crypto/subtle"
	"fmt"
)

// Key is a private key recovered from a BIP38 string.
type Key struct {
	PrivateKey []byte
	Compressed bool
}

// Wipe zeroes the private key.
func (k *Key) Wipe() {
	wipe(k.PrivateKey)
}

// decryptHalf decrypts a single AES block from in and XORs it with mask
// into out.
func decryptHalf(in, mask, key, out []byte) error {
	c, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("%w: failed to create cipher: %v", ErrKeyDerivation, err)
	}
	c.Decrypt(out, in)
	for i := 0; i < aes.BlockSize; i++ {
		out[i] ^= mask[i]
	}
	return nil
}

// Decrypt recovers the private key from a BIP38 string. The record does not
// carry the address version, so network must be the one used to encrypt;
// a wrong network or passphrase yields ErrPassphraseMismatch.
func (c *Context) Decrypt(encoded string, passphrase []byte, network byte) (*Key, error) {
	buf, err := decodeRecord(encoded)
	if err != nil {
		return nil, err
	}
	defer wipe(buf)

	compressed, err := parseFlags(buf[recordFlagsOffset])
	if err != nil {
		return nil, err
	}
	var salt [ChecksumLen]byte
	copy(salt[:], buf[recordSaltOffset:recordCipherTextOffset])

	derived, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer wipe(derived)
	mask, key := derived[:derivedMaskLen], derived[derivedMaskLen:]

	privateKey := make([]byte, PrivateKeyLen)
	for i := 0; i < cipherTextLen; i += aes.BlockSize {
		in := buf[recordCipherTextOffset+i : recordCipherTextOffset+i+aes.BlockSize]
		if err := decryptHalf(in, mask[i:i+aes.BlockSize], key, privateKey[i:i+aes.BlockSize]); err != nil {
			wipe(privateKey)
			return nil, err
		}
	}

	check, err := c.addressChecksum(privateKey, network, compressed)
	if err != nil {
		// A wrong passphrase can decrypt to an out-of-range scalar.
		wipe(privateKey)
		return nil, fmt.Errorf("%w: %v", ErrPassphraseMismatch, err)
	}
	if subtle.ConstantTimeCompare(check[:], salt[:]) != 1 {
		wipe(privateKey)
		return nil, ErrPassphraseMismatch
	}
	return &Key{PrivateKey: privateKey, Compressed: compressed}, nil
}

// Decrypt recovers the private key using the default context.
func Decrypt(encoded string, passphrase []byte, network byte) (*Key, error) {
	return DefaultContext().Decrypt(encoded, passphrase, network)
}
