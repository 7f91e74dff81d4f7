package bip38

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"
)

func Test_Decrypt_Vectors(t *testing.T) {
	for _, v := range testVectors {
		t.Run(v.name, func(t *testing.T) {
			assert := assert.New(t)

			key, err := Decrypt(v.encrypted, []byte(v.passphrase), 0x00)
			assert.NoError(err)
			assert.Equal(mustDecodeHex(t, v.privateKey), key.PrivateKey)
			assert.Equal(v.compressed, key.Compressed)

			key.Wipe()
			assert.True(isZero(key.PrivateKey))
		})
	}
}

func Test_Decrypt_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, network := range []byte{0x00, 0x6f} {
		for _, compressed := range []bool{false, true} {
			pk, err := btcec.NewPrivateKey(btcec.S256())
			assert.NoError(err)
			priv := pk.Serialize()

			encrypted, err := Encrypt(priv, []byte("potato123"), network, compressed)
			assert.NoError(err)

			key, err := Decrypt(encrypted, []byte("potato123"), network)
			assert.NoError(err)
			assert.Equal(priv, key.PrivateKey)
			assert.Equal(compressed, key.Compressed)
		}
	}
}

func Test_Decrypt_WrongPassphrase(t *testing.T) {
	assert := assert.New(t)

	v := testVectors[0]
	key, err := Decrypt(v.encrypted, []byte("TestingOneTwoThreeFour"), 0x00)
	assert.Nil(key)
	assert.True(errors.Is(err, ErrPassphraseMismatch))
}

func Test_Decrypt_WrongNetwork(t *testing.T) {
	assert := assert.New(t)

	v := testVectors[2]
	key, err := Decrypt(v.encrypted, []byte(v.passphrase), 0x6f)
	assert.Nil(key)
	assert.True(errors.Is(err, ErrPassphraseMismatch))
}

func Test_Decrypt_InvalidRecords(t *testing.T) {
	assert := assert.New(t)

	_, err := Decrypt("", []byte("pass"), 0x00)
	assert.True(errors.Is(err, ErrEncoding))

	buf := make([]byte, RecordLen)
	putRecordHeader(buf, true, [ChecksumLen]byte{1, 2, 3, 4})

	for _, reserved := range []byte{0x10, 0x08, 0x04, 0x02, 0x01} {
		buf[recordFlagsOffset] = FlagDefault | reserved
		_, err = Decrypt(encodeRecord(buf), []byte("pass"), 0x00)
		assert.True(errors.Is(err, ErrInvalidFlags), "reserved 0x%02x", reserved)
	}

	buf[recordFlagsOffset] = FlagDefault
	buf[recordTypeOffset] = TypeECMultiplied
	_, err = Decrypt(encodeRecord(buf), []byte("pass"), 0x00)
	assert.True(errors.Is(err, ErrECMultiplyUnsupported))
}

func Test_Decrypt_WipesOnFailure(t *testing.T) {
	assert := assert.New(t)

	wiped := recordWipes(t)
	v := testVectors[1]
	_, err := Decrypt(v.encrypted, []byte("not Satoshi"), 0x00)
	assert.Error(err)

	var sizes []int
	for _, b := range *wiped {
		assert.True(isZero(b))
		sizes = append(sizes, len(b))
	}
	assert.Contains(sizes, deriveKey_keyLen)
	assert.Contains(sizes, PrivateKeyLen)
	assert.Contains(sizes, RecordLen)
}
