// bip38 encrypts and decrypts private keys in the BIP38 format.
//
//	bip38 encrypt [-network mainnet] <wif>
//	bip38 encrypt [-network mainnet] -hex [-uncompressed] <hex-private-key>
//	bip38 decrypt [-network mainnet] <6P...>
//
// The passphrase is read from BIP38_PASSPHRASE_FILE if set, otherwise from
// the terminal, otherwise from the first line of stdin. BIP38_NETWORK sets
// the default network.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/regnull/bip38"
)

var errUsage = errors.New("usage")

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: bip38 <encrypt|decrypt> [flags] <key>\n")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bip38: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var out string
	switch os.Args[1] {
	case "encrypt":
		out, err = runEncrypt(cfg, os.Args[2:])
	case "decrypt":
		out, err = runDecrypt(cfg, os.Args[2:])
	default:
		err = errUsage
	}
	if errors.Is(err, errUsage) {
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func runEncrypt(cfg *Config, args []string) (string, error) {
	fs := flag.NewFlagSet("encrypt", flag.ContinueOnError)
	network := fs.String("network", cfg.Network, "network: mainnet, testnet3, regtest or simnet")
	useHex := fs.Bool("hex", false, "the key is a 32-byte hex string instead of WIF")
	uncompressed := fs.Bool("uncompressed", false, "with -hex, use the uncompressed public key")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return "", errUsage
	}

	params, err := bip38.Network(*network)
	if err != nil {
		return "", err
	}
	passphrase, err := readPassphrase(cfg, os.Stdin)
	if err != nil {
		return "", err
	}
	defer clearBytes(passphrase)

	if !*useHex {
		return bip38.EncryptWIF(fs.Arg(0), string(passphrase))
	}
	privateKey, err := hex.DecodeString(fs.Arg(0))
	if err != nil {
		return "", fmt.Errorf("invalid hex private key: %w", err)
	}
	defer clearBytes(privateKey)
	normalized := bip38.NormalizePassphrase(string(passphrase))
	defer clearBytes(normalized)
	return bip38.Encrypt(privateKey, normalized, params.PubKeyHashAddrID, !*uncompressed)
}

func runDecrypt(cfg *Config, args []string) (string, error) {
	fs := flag.NewFlagSet("decrypt", flag.ContinueOnError)
	network := fs.String("network", cfg.Network, "network: mainnet, testnet3, regtest or simnet")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return "", errUsage
	}

	params, err := bip38.Network(*network)
	if err != nil {
		return "", err
	}
	passphrase, err := readPassphrase(cfg, os.Stdin)
	if err != nil {
		return "", err
	}
	defer clearBytes(passphrase)
	return bip38.DecryptWIF(fs.Arg(0), string(passphrase), params)
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
