package multisig

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/klingon-exchange/klingon-hd/pkg/chain"
)

// MaxSigners is the most cosigners a standard multisig script may carry.
const MaxSigners = 20

// Script holds a constructed multisig output and its unlocking scripts.
type Script struct {
	AddressType chain.AddressType
	Address     string

	// RedeemScript is the script hashed into a P2SH output.
	// Nil for native P2WSH.
	RedeemScript []byte

	// WitnessScript is the script hashed into the witness program.
	// Nil for bare P2SH.
	WitnessScript []byte
}

// NewScript builds an m-of-n multisig address of the given type.
// Public keys must be serialized SEC points (compressed or uncompressed).
func NewScript(addressType chain.AddressType, network chain.Network, required int, pubKeys [][]byte) (*Script, error) {
	params, ok := chain.Get(network)
	if !ok {
		return nil, fmt.Errorf("unknown network %q", network)
	}
	if len(pubKeys) == 0 {
		return nil, fmt.Errorf("at least one public key is required")
	}
	if len(pubKeys) > MaxSigners {
		return nil, fmt.Errorf("too many signers: %d (max %d)", len(pubKeys), MaxSigners)
	}
	if required < 1 || required > len(pubKeys) {
		return nil, fmt.Errorf("required signers %d out of range for %d keys", required, len(pubKeys))
	}

	cfg := params.CfgParams()
	addrKeys := make([]*btcutil.AddressPubKey, 0, len(pubKeys))
	for i, raw := range pubKeys {
		if _, err := btcec.ParsePubKey(raw); err != nil {
			return nil, fmt.Errorf("public key %d is not on the curve: %w", i, err)
		}
		addrKey, err := btcutil.NewAddressPubKey(raw, cfg)
		if err != nil {
			return nil, fmt.Errorf("public key %d: %w", i, err)
		}
		addrKeys = append(addrKeys, addrKey)
	}

	script, err := txscript.MultiSigScript(addrKeys, required)
	if err != nil {
		return nil, fmt.Errorf("failed to build multisig script: %w", err)
	}

	switch addressType {
	case chain.AddressP2SH:
		return newP2SH(script, cfg)
	case chain.AddressP2WSH:
		return newP2WSH(script, cfg)
	case chain.AddressP2SHP2WSH:
		return newP2SHP2WSH(script, cfg)
	default:
		return nil, fmt.Errorf("address type %q does not support multisig", addressType)
	}
}

// newP2SH hashes the multisig script into a legacy script-hash address.
func newP2SH(script []byte, cfg *chaincfg.Params) (*Script, error) {
	addr, err := btcutil.NewAddressScriptHashFromHash(btcutil.Hash160(script), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create P2SH address: %w", err)
	}
	return &Script{
		AddressType:  chain.AddressP2SH,
		Address:      addr.EncodeAddress(),
		RedeemScript: script,
	}, nil
}

// newP2WSH hashes the multisig script into a native SegWit witness program.
func newP2WSH(script []byte, cfg *chaincfg.Params) (*Script, error) {
	program := sha256.Sum256(script)
	addr, err := btcutil.NewAddressWitnessScriptHash(program[:], cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create P2WSH address: %w", err)
	}
	return &Script{
		AddressType:   chain.AddressP2WSH,
		Address:       addr.EncodeAddress(),
		WitnessScript: script,
	}, nil
}

// newP2SHP2WSH wraps the P2WSH witness program in a P2SH output, so the
// redeem script is the witness wrap and the multisig script moves to the
// witness.
func newP2SHP2WSH(script []byte, cfg *chaincfg.Params) (*Script, error) {
	program := sha256.Sum256(script)
	witnessAddr, err := btcutil.NewAddressWitnessScriptHash(program[:], cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create witness address: %w", err)
	}

	redeemScript, err := txscript.PayToAddrScript(witnessAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create witness wrap script: %w", err)
	}

	addr, err := btcutil.NewAddressScriptHashFromHash(btcutil.Hash160(redeemScript), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create P2SH address: %w", err)
	}
	return &Script{
		AddressType:   chain.AddressP2SHP2WSH,
		Address:       addr.EncodeAddress(),
		RedeemScript:  redeemScript,
		WitnessScript: script,
	}, nil
}
