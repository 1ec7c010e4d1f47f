// Package multisig derives default BIP32 roots and builds m-of-n script
// addresses for the supported multisig address types (P2SH, nested
// P2SH-P2WSH, native P2WSH).
package multisig

import (
	"strconv"

	"github.com/klingon-exchange/klingon-hd/pkg/chain"
)

// DefaultBIP32Root returns the canonical default derivation root for a
// multisig address type on the given network:
//
//	P2SH       m/45'/<coin>'/0'
//	P2SH-P2WSH m/48'/<coin>'/0'/1'
//	P2WSH      m/48'/<coin>'/0'/2'
//
// where coin is 0 on mainnet and 1 on testnet. The second return is false
// when the address type has no multisig root; that is absence, not a
// validation failure.
func DefaultBIP32Root(addressType chain.AddressType, network chain.Network) (string, bool) {
	params, ok := chain.Get(network)
	if !ok {
		return "", false
	}
	coin := strconv.FormatUint(uint64(params.CoinType), 10)

	switch addressType {
	case chain.AddressP2SH:
		return "m/45'/" + coin + "'/0'", true
	case chain.AddressP2SHP2WSH:
		return "m/48'/" + coin + "'/0'/1'", true
	case chain.AddressP2WSH:
		return "m/48'/" + coin + "'/0'/2'", true
	default:
		return "", false
	}
}

// ChildPath appends a relative index or sub-path to the default BIP32
// root. An empty relative path selects the first child, "0". Propagates
// false for address types without a root.
func ChildPath(addressType chain.AddressType, network chain.Network, relative string) (string, bool) {
	root, ok := DefaultBIP32Root(addressType, network)
	if !ok {
		return "", false
	}
	if relative == "" {
		relative = "0"
	}
	return root + "/" + relative, true
}

// ChildPathForIndex appends a single unhardened index to the default root.
func ChildPathForIndex(addressType chain.AddressType, network chain.Network, index uint32) (string, bool) {
	return ChildPath(addressType, network, strconv.FormatUint(uint64(index), 10))
}
