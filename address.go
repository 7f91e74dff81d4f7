package bip38

import "github.com/btcsuite/btcutil/base58"

// Layout of the address payload that gets base58 encoded:
// [network:1][hash160:20][checksum:4].
const (
	hash160Len = 20

	addrNetworkOffset  = 0
	addrHashOffset     = addrNetworkOffset + 1
	addrChecksumOffset = addrHashOffset + hash160Len
	addrPayloadLen     = addrChecksumOffset + ChecksumLen
)

// putAddressPayload writes network and hash into buf at their fixed offsets
// and appends the checksum over both.
func putAddressPayload(buf []byte, network byte, hash []byte) {
	buf[addrNetworkOffset] = network
	copy(buf[addrHashOffset:addrChecksumOffset], hash)
	sum := Checksum(buf[:addrChecksumOffset])
	copy(buf[addrChecksumOffset:], sum[:])
	wipe(sum[:])
}

// Address returns the base58 P2PKH address for the private key using the
// given address version byte (0x00 for Bitcoin mainnet).
func (c *Context) Address(privateKey []byte, network byte, compressed bool) (string, error) {
	pubKey, err := c.PublicKey(privateKey, compressed)
	if err != nil {
		return "", err
	}
	defer wipe(pubKey)

	hash := Hash160(pubKey)
	defer wipe(hash)

	var buf [addrPayloadLen]byte
	defer wipe(buf[:])
	putAddressPayload(buf[:], network, hash)
	return base58.Encode(buf[:]), nil
}

// Address returns the address for the private key using the default context.
func Address(privateKey []byte, network byte, compressed bool) (string, error) {
	return DefaultContext().Address(privateKey, network, compressed)
}

// addressChecksum computes the BIP38 address hash: the checksum of the
// address text. Only these four bytes leave the function.
func (c *Context) addressChecksum(privateKey []byte, network byte, compressed bool) ([ChecksumLen]byte, error) {
	var sum [ChecksumLen]byte
	addr, err := c.Address(privateKey, network, compressed)
	if err != nil {
		return sum, err
	}
	addrBytes := []byte(addr)
	sum = Checksum(addrBytes)
	wipe(addrBytes)
	return sum, nil
}
