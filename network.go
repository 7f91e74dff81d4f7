package bip38

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

var networks = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"testnet3": &chaincfg.TestNet3Params,
	"regtest":  &chaincfg.RegressionNetParams,
	"simnet":   &chaincfg.SimNetParams,
}

// knownNetworks is the lookup order used when detecting the network of a WIF.
var knownNetworks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SimNetParams,
}

// Network returns the chain parameters for the network name: "mainnet",
// "testnet3" (or "testnet"), "regtest" or "simnet".
func Network(name string) (*chaincfg.Params, error) {
	name = strings.ToLower(name)
	if name == "testnet" {
		name = "testnet3"
	}
	params, ok := networks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return params, nil
}
