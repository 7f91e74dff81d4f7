package bip38

import (
	"crypto/aes"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// Key derivation parameters, fixed by BIP38.
	deriveKey_N      = 16384
	deriveKey_r      = 8
	deriveKey_p      = 8
	deriveKey_keyLen = 64

	// The first half of the derived key is the XOR mask, the second
	// half is the AES-256 key.
	derivedMaskLen = 32
)

// deriveKey derives 64 bytes of key material from the passphrase and the
// address hash.
// Key derivation algorithm is described in https://www.tarsnap.com/scrypt/scrypt.pdf.
func deriveKey(passphrase []byte, salt [ChecksumLen]byte) ([]byte, error) {
	key, err := scrypt.Key(passphrase, salt[:], deriveKey_N, deriveKey_r, deriveKey_p,
		deriveKey_keyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	return key, nil
}

// encryptHalf XORs a 16-byte half of the private key with mask and encrypts
// the result as a single AES block into out. The input is not modified.
func encryptHalf(half, mask, key, out []byte) error {
	c, err := aes.NewCipher(key) // The key must be 32 bytes long.
	if err != nil {
		return fmt.Errorf("%w: failed to create cipher: %v", ErrKeyDerivation, err)
	}
	var block [aes.BlockSize]byte
	defer wipe(block[:])
	for i := range block {
		block[i] = half[i] ^ mask[i]
	}
	c.Encrypt(out, block[:])
	return nil
}

// Encrypt encrypts the private key with the passphrase and returns the BIP38
// string. network is the address version byte used to compute the address
// hash (0x00 for Bitcoin mainnet). The private key is not modified.
func (c *Context) Encrypt(privateKey, passphrase []byte, network byte, compressed bool) (string, error) {
	salt, err := c.addressChecksum(privateKey, network, compressed)
	defer wipe(salt[:])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAddressDerivation, err)
	}

	derived, err := deriveKey(passphrase, salt)
	if err != nil {
		return "", err
	}
	defer wipe(derived)
	mask, key := derived[:derivedMaskLen], derived[derivedMaskLen:]

	var buf [RecordLen]byte
	defer wipe(buf[:])
	putRecordHeader(buf[:], compressed, salt)
	for i := 0; i < cipherTextLen; i += aes.BlockSize {
		out := buf[recordCipherTextOffset+i : recordCipherTextOffset+i+aes.BlockSize]
		if err := encryptHalf(privateKey[i:i+aes.BlockSize], mask[i:i+aes.BlockSize], key, out); err != nil {
			return "", err
		}
	}
	return encodeRecord(buf[:]), nil
}

// Encrypt encrypts the private key using the default context.
func Encrypt(privateKey, passphrase []byte, network byte, compressed bool) (string, error) {
	return DefaultContext().Encrypt(privateKey, passphrase, network, compressed)
}
