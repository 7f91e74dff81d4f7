package bip38

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"
)

// wifNetwork finds the chain parameters the WIF was encoded for.
func wifNetwork(w *btcutil.WIF) (*chaincfg.Params, error) {
	for _, params := range knownNetworks {
		if w.IsForNet(params) {
			return params, nil
		}
	}
	return nil, ErrUnknownNetwork
}

// EncryptWIF encrypts a WIF-encoded private key. The network and the
// compression flag are taken from the WIF; the passphrase is NFC-normalized.
func (c *Context) EncryptWIF(wif, passphrase string) (string, error) {
	w, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	defer wipeInt(w.PrivKey.D)
	params, err := wifNetwork(w)
	if err != nil {
		return "", err
	}

	privateKey := w.PrivKey.Serialize()
	defer wipe(privateKey)
	pass := NormalizePassphrase(passphrase)
	defer wipe(pass)
	return c.Encrypt(privateKey, pass, params.PubKeyHashAddrID, w.CompressPubKey)
}

// EncryptWIF encrypts a WIF-encoded private key using the default context.
func EncryptWIF(wif, passphrase string) (string, error) {
	return DefaultContext().EncryptWIF(wif, passphrase)
}

// DecryptWIF decrypts a BIP38 string and returns the private key in WIF
// format for the given network.
func (c *Context) DecryptWIF(encoded, passphrase string, params *chaincfg.Params) (string, error) {
	pass := NormalizePassphrase(passphrase)
	defer wipe(pass)
	key, err := c.Decrypt(encoded, pass, params.PubKeyHashAddrID)
	if err != nil {
		return "", err
	}
	defer key.Wipe()

	priv, _ := btcec.PrivKeyFromBytes(c.curve, key.PrivateKey)
	defer wipeInt(priv.D)
	w, err := btcutil.NewWIF(priv, params, key.Compressed)
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

// DecryptWIF decrypts a BIP38 string using the default context.
func DecryptWIF(encoded, passphrase string, params *chaincfg.Params) (string, error) {
	return DefaultContext().DecryptWIF(encoded, passphrase, params)
}
