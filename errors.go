package bip38

import "fmt"

var ErrInvalidKeyLength = fmt.Errorf("private key must be 32 bytes long")
var ErrKeyDerivation = fmt.Errorf("key derivation failed")
var ErrAddressDerivation = fmt.Errorf("address derivation failed")
var ErrEncoding = fmt.Errorf("invalid base58 encoding")

// Errors returned when decoding.
var ErrInvalidRecord = fmt.Errorf("invalid BIP38 record")
var ErrInvalidFlags = fmt.Errorf("invalid BIP38 flag byte")
var ErrECMultiplyUnsupported = fmt.Errorf("EC-multiplied BIP38 keys are not supported")
var ErrPassphraseMismatch = fmt.Errorf("passphrase does not match")

var ErrUnknownNetwork = fmt.Errorf("unknown network")
