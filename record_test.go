package bip38

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
)

func Test_Record_Layout(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, recordVersionOffset)
	assert.Equal(1, recordTypeOffset)
	assert.Equal(2, recordFlagsOffset)
	assert.Equal(3, recordSaltOffset)
	assert.Equal(7, recordCipherTextOffset)
	assert.Equal(32, cipherTextLen)
	assert.Equal(39, RecordLen)
}

func Test_Record_FlagByte(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(byte(0xc0), flagByte(false))
	assert.Equal(byte(0xe0), flagByte(true))
	assert.Zero(flagByte(false) & FlagsReserved)
	assert.Zero(flagByte(true) & FlagsReserved)
}

func Test_Record_ParseFlags(t *testing.T) {
	assert := assert.New(t)

	compressed, err := parseFlags(0xc0)
	assert.NoError(err)
	assert.False(compressed)

	compressed, err = parseFlags(0xe0)
	assert.NoError(err)
	assert.True(compressed)

	for _, flags := range []byte{0x00, 0x40, 0x80, 0xd0, 0xc8, 0xc4, 0xc2, 0xc1, 0xff} {
		_, err := parseFlags(flags)
		assert.True(errors.Is(err, ErrInvalidFlags), "flags 0x%02x", flags)
	}
}

func Test_Record_EncodeDecode(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, RecordLen)
	putRecordHeader(buf, true, [ChecksumLen]byte{0xde, 0xad, 0xbe, 0xef})
	for i := recordCipherTextOffset; i < RecordLen; i++ {
		buf[i] = byte(i)
	}
	assert.Equal([]byte{0x01, 0x42, 0xe0, 0xde, 0xad, 0xbe, 0xef}, buf[:recordCipherTextOffset])

	s := encodeRecord(buf)
	assert.Equal("6P", s[:2])

	decoded, err := decodeRecord(s)
	assert.NoError(err)
	assert.Equal(buf, decoded)
}

func Test_Record_DecodeInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := decodeRecord("not base58 0OIl")
	assert.True(errors.Is(err, ErrEncoding))

	// Checksum mismatch.
	buf := make([]byte, RecordLen)
	putRecordHeader(buf, false, [ChecksumLen]byte{})
	s := encodeRecord(buf)
	corrupted := []byte(s)
	if corrupted[10] == 'z' {
		corrupted[10] = 'y'
	} else {
		corrupted[10] = 'z'
	}
	_, err = decodeRecord(string(corrupted))
	assert.True(errors.Is(err, ErrEncoding))

	// Wrong length.
	_, err = decodeRecord(base58.CheckEncode(buf[1:20], 0x01))
	assert.True(errors.Is(err, ErrInvalidRecord))

	// Wrong version.
	_, err = decodeRecord(base58.CheckEncode(buf[1:], 0x02))
	assert.True(errors.Is(err, ErrInvalidRecord))

	// Unknown type.
	buf[recordTypeOffset] = 0x44
	_, err = decodeRecord(encodeRecord(buf))
	assert.True(errors.Is(err, ErrInvalidRecord))

	// EC-multiplied records are not supported.
	buf[recordTypeOffset] = TypeECMultiplied
	_, err = decodeRecord(encodeRecord(buf))
	assert.Equal(ErrECMultiplyUnsupported, err)
}
