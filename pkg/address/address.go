// Package address validates Bitcoin addresses against a network,
// combining a cheap prefix check with full checksum decoding.
package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/klingon-exchange/klingon-hd/pkg/chain"
)

// Validation failures, distinguishable with errors.Is.
var (
	ErrBlankAddress  = errors.New("address cannot be blank.")
	ErrWrongNetwork  = errors.New("address is not valid for this network.")
	ErrInvalidFormat = errors.New("address is invalid.")
)

// Validate checks an address's network prefix and checksum.
// A nil return means the address is well-formed for the network.
func Validate(addr string, network chain.Network) error {
	if addr == "" {
		return ErrBlankAddress
	}
	params, ok := chain.Get(network)
	if !ok {
		return fmt.Errorf("unknown network %q", network)
	}
	if !params.AddressPrefixPattern.MatchString(addr) {
		return ErrWrongNetwork
	}

	decoded, err := btcutil.DecodeAddress(addr, params.CfgParams())
	if err != nil {
		return ErrInvalidFormat
	}
	if !decoded.IsForNet(params.CfgParams()) {
		return ErrWrongNetwork
	}
	return nil
}

// Parse decodes an address and reports its script type.
func Parse(addr string, network chain.Network) (btcutil.Address, chain.AddressType, error) {
	if err := Validate(addr, network); err != nil {
		return nil, "", err
	}
	params, _ := chain.Get(network)

	decoded, err := btcutil.DecodeAddress(addr, params.CfgParams())
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode address: %w", err)
	}

	var addrType chain.AddressType
	switch decoded.(type) {
	case *btcutil.AddressPubKeyHash:
		addrType = chain.AddressP2PKH
	case *btcutil.AddressScriptHash:
		addrType = chain.AddressP2SH
	case *btcutil.AddressWitnessPubKeyHash:
		addrType = chain.AddressP2WPKH
	case *btcutil.AddressWitnessScriptHash:
		addrType = chain.AddressP2WSH
	case *btcutil.AddressTaproot:
		addrType = chain.AddressP2TR
	default:
		addrType = "unknown"
	}

	return decoded, addrType, nil
}
