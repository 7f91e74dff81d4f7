package bip38

import (
	"crypto/aes"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// Record layout: [version:1][type:1][flags:1][salt:4][ciphertext:32].
// A base58check checksum over all 39 bytes is appended when encoding.
const (
	recordVersionOffset    = 0
	recordTypeOffset       = 1
	recordFlagsOffset      = 2
	recordSaltOffset       = 3
	recordCipherTextOffset = recordSaltOffset + ChecksumLen
	cipherTextLen          = 2 * aes.BlockSize

	// RecordLen is the length of a BIP38 record before checksum and base58.
	RecordLen = recordCipherTextOffset + cipherTextLen
)

const (
	recordVersion byte = 0x01

	TypeNonECMultiplied byte = 0x42
	TypeECMultiplied    byte = 0x43
)

// Flag byte bits.
const (
	FlagDefault        byte = 0x80 | 0x40
	FlagCompressed     byte = 0x20
	FlagHasLotSequence byte = 0x04
	FlagsReserved      byte = 0x10 | 0x08 | 0x02 | 0x01
)

// flagByte returns the flag byte for a non-EC-multiplied record.
func flagByte(compressed bool) byte {
	if compressed {
		return FlagDefault | FlagCompressed
	}
	return FlagDefault
}

// putRecordHeader fills in everything except the ciphertext.
func putRecordHeader(buf []byte, compressed bool, salt [ChecksumLen]byte) {
	buf[recordVersionOffset] = recordVersion
	buf[recordTypeOffset] = TypeNonECMultiplied
	buf[recordFlagsOffset] = flagByte(compressed)
	copy(buf[recordSaltOffset:recordCipherTextOffset], salt[:])
}

// encodeRecord returns the base58check encoding of the record. The first
// byte doubles as the base58check version byte.
func encodeRecord(buf []byte) string {
	return base58.CheckEncode(buf[recordTypeOffset:RecordLen], buf[recordVersionOffset])
}

// decodeRecord reverses encodeRecord and validates the fixed header bytes.
// The returned buffer is RecordLen bytes long.
func decodeRecord(s string) ([]byte, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	defer wipe(payload)
	if len(payload) != RecordLen-1 {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidRecord, len(payload)+1, RecordLen)
	}
	if version != recordVersion {
		return nil, fmt.Errorf("%w: version byte 0x%02x", ErrInvalidRecord, version)
	}

	buf := make([]byte, RecordLen)
	buf[recordVersionOffset] = version
	copy(buf[recordTypeOffset:], payload)

	switch buf[recordTypeOffset] {
	case TypeNonECMultiplied:
	case TypeECMultiplied:
		wipe(buf)
		return nil, ErrECMultiplyUnsupported
	default:
		wipe(buf)
		return nil, fmt.Errorf("%w: type byte 0x%02x", ErrInvalidRecord, payload[0])
	}
	return buf, nil
}

// parseFlags validates the flag byte of a non-EC-multiplied record and
// returns the compression flag.
func parseFlags(flags byte) (bool, error) {
	if flags&FlagDefault != FlagDefault {
		return false, fmt.Errorf("%w: 0x%02x lacks default bits", ErrInvalidFlags, flags)
	}
	if flags&(FlagsReserved|FlagHasLotSequence) != 0 {
		return false, fmt.Errorf("%w: 0x%02x has reserved bits set", ErrInvalidFlags, flags)
	}
	return flags&FlagCompressed != 0, nil
}
