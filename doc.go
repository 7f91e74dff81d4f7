/*
Package bip38 encrypts secp256k1 private keys with a passphrase into the BIP38
text form (the "6P..." strings), and decrypts them back.

Only the non-EC-multiplied variant is supported:

-- Encrypting a raw 32-byte private key for a given address version

-- Encrypting and decrypting WIF-encoded keys

-- Decrypting a BIP38 string produced by any conforming implementation

Records using EC multiplication (type 0x43) are rejected with
ErrECMultiplyUnsupported.

All intermediate buffers that hold secret material are zeroed before the
functions return, on success and on failure.

See https://github.com/bitcoin/bips/blob/master/bip-0038.mediawiki.
*/
package bip38
