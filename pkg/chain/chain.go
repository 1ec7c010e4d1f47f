// Package chain defines network parameters for the Bitcoin networks this
// toolkit understands. All network-specific values are hardcoded here - no
// external configuration needed.
package chain

import (
	"regexp"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network represents mainnet or testnet.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// AddressType represents the address encoding format.
type AddressType string

const (
	AddressP2PKH     AddressType = "p2pkh"      // Legacy (1...)
	AddressP2SH      AddressType = "p2sh"       // Script hash (3...)
	AddressP2WPKH    AddressType = "p2wpkh"     // Native SegWit (bc1q...)
	AddressP2WSH     AddressType = "p2wsh"      // SegWit script (bc1q...)
	AddressP2SHP2WSH AddressType = "p2sh-p2wsh" // Nested SegWit script (3...)
	AddressP2TR      AddressType = "p2tr"       // Taproot (bc1p...)
)

// Params contains all parameters for a network.
type Params struct {
	// Identity
	Name    string // Bitcoin, Bitcoin Testnet
	Network Network

	// BIP44/48 coin type (0 for mainnet, 1 for testnet)
	CoinType uint32

	// Address prefixes
	PubKeyHashAddrID        byte   // Address prefix for P2PKH
	ScriptHashAddrID        byte   // Address prefix for P2SH
	WitnessPubKeyHashAddrID byte   // SegWit P2WPKH version
	WitnessScriptHashAddrID byte   // SegWit P2WSH version
	Bech32HRP               string // Bech32 human-readable prefix
	WIF                     byte   // Private key prefix

	// BIP32 HD key magic bytes (for xpub/xprv serialization)
	HDPrivateKeyID [4]byte // Extended private key prefix (e.g., xprv, tprv)
	HDPublicKeyID  [4]byte // Extended public key prefix (e.g., xpub, tpub)

	// AddressPrefixPattern matches the leading characters an address on
	// this network may carry; checked before any checksum validation.
	AddressPrefixPattern *regexp.Regexp
}

// Registry holds params indexed by network.
var registry = make(map[Network]*Params)

// Register adds network params to the registry.
func Register(network Network, params *Params) {
	registry[network] = params
}

// Get returns the params for a network.
func Get(network Network) (*Params, bool) {
	params, ok := registry[network]
	return params, ok
}

// List returns all registered networks.
func List() []Network {
	networks := make([]Network, 0, len(registry))
	for network := range registry {
		networks = append(networks, network)
	}
	return networks
}

// IsSupported returns true if the network is registered.
func IsSupported(network Network) bool {
	_, ok := registry[network]
	return ok
}

// CfgParams converts these params to btcd's chaincfg form for use with
// btcutil address encoding and decoding.
func (p *Params) CfgParams() *chaincfg.Params {
	return &chaincfg.Params{
		Name: p.Name,

		// Address encoding
		PubKeyHashAddrID:        p.PubKeyHashAddrID,
		ScriptHashAddrID:        p.ScriptHashAddrID,
		WitnessPubKeyHashAddrID: p.WitnessPubKeyHashAddrID,
		WitnessScriptHashAddrID: p.WitnessScriptHashAddrID,

		// Bech32
		Bech32HRPSegwit: p.Bech32HRP,

		// BIP32 HD key magic bytes
		HDPrivateKeyID: p.HDPrivateKeyID,
		HDPublicKeyID:  p.HDPublicKeyID,
	}
}
