package bip38

import "golang.org/x/text/unicode/norm"

// NormalizePassphrase returns the passphrase in Unicode normalization form C,
// which BIP38 requires before the passphrase is fed to scrypt.
func NormalizePassphrase(passphrase string) []byte {
	return norm.NFC.Bytes([]byte(passphrase))
}
