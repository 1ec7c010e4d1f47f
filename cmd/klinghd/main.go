// Package main provides klinghd - a command line toolkit for BIP32
// derivation paths and multisig addresses.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/klingon-exchange/klingon-hd/pkg/address"
	"github.com/klingon-exchange/klingon-hd/pkg/bip32"
	"github.com/klingon-exchange/klingon-hd/pkg/chain"
	"github.com/klingon-exchange/klingon-hd/pkg/logging"
	"github.com/klingon-exchange/klingon-hd/pkg/mnemonic"
	"github.com/klingon-exchange/klingon-hd/pkg/multisig"
	"github.com/klingon-exchange/klingon-hd/pkg/walletconfig"
)

var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

func main() {
	var (
		testnet     = flag.Bool("testnet", false, "Use testnet parameters")
		mode        = flag.String("mode", "", "Path hardening constraint (hardened, unhardened)")
		addrType    = flag.String("type", "p2wsh", "Multisig address type (p2sh, p2sh-p2wsh, p2wsh)")
		required    = flag.Int("required", 2, "Required signers for the address command")
		walletName  = flag.String("name", "", "Wallet name for wallet-init")
		total       = flag.Int("total", 3, "Total signers for wallet-init")
		out         = flag.String("out", "wallet.yaml", "Output file for wallet-init")
		words       = flag.Int("words", 24, "Word count for mnemonic generation")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		showVersion = flag.Bool("version", false, "Show version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	log := logging.New(&logging.Config{
		Level:      *logLevel,
		TimeFormat: time.TimeOnly,
	})
	logging.SetDefault(log)

	if *showVersion {
		log.Infof("klinghd %s (commit: %s)", version, commit)
		os.Exit(0)
	}

	network := chain.Mainnet
	if *testnet {
		network = chain.Testnet
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "validate-path":
		err = runValidatePath(args[1:], *mode)
	case "validate-address":
		err = runValidateAddress(args[1:], network)
	case "root":
		err = runRoot(*addrType, network)
	case "child":
		err = runChild(args[1:], *addrType, network)
	case "address":
		err = runAddress(args[1:], *addrType, network, *required)
	case "wallet-init":
		err = runWalletInit(*walletName, *addrType, network, *required, *total, *out, log)
	case "mnemonic":
		err = runMnemonic(args[1:], *words)
	default:
		log.Errorf("unknown command %q", args[0])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("Command failed", "error", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `klinghd - BIP32 path and multisig address toolkit

Usage:
  klinghd [flags] validate-path <path>...
  klinghd [flags] validate-address <address>...
  klinghd [flags] root
  klinghd [flags] child [index-or-subpath]
  klinghd [flags] address <pubkey-hex>...
  klinghd [flags] wallet-init -name <name>
  klinghd [flags] mnemonic [phrase]

Flags:
`)
	flag.PrintDefaults()
}

func parseMode(s string) (bip32.Mode, error) {
	switch s {
	case "":
		return bip32.ModeUnconstrained, nil
	case "hardened":
		return bip32.ModeHardened, nil
	case "unhardened":
		return bip32.ModeUnhardened, nil
	default:
		return bip32.ModeUnconstrained, fmt.Errorf("unknown mode %q", s)
	}
}

func runValidatePath(paths []string, modeName string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no paths given")
	}
	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := bip32.ValidatePath(path, mode); err != nil {
			fmt.Printf("%s: %v\n", path, err)
			continue
		}
		fmt.Printf("%s: ok %v\n", path, bip32.PathToSequence(path))
	}
	return nil
}

func runValidateAddress(addrs []string, network chain.Network) error {
	if len(addrs) == 0 {
		return fmt.Errorf("no addresses given")
	}
	for _, addr := range addrs {
		_, addrType, err := address.Parse(addr, network)
		if err != nil {
			fmt.Printf("%s: %v\n", addr, err)
			continue
		}
		fmt.Printf("%s: ok (%s)\n", addr, addrType)
	}
	return nil
}

func runRoot(addrType string, network chain.Network) error {
	root, ok := multisig.DefaultBIP32Root(chain.AddressType(addrType), network)
	if !ok {
		return fmt.Errorf("address type %q has no multisig root", addrType)
	}
	fmt.Println(root)
	return nil
}

func runChild(args []string, addrType string, network chain.Network) error {
	relative := ""
	if len(args) > 0 {
		relative = args[0]
	}
	path, ok := multisig.ChildPath(chain.AddressType(addrType), network, relative)
	if !ok {
		return fmt.Errorf("address type %q has no multisig root", addrType)
	}
	fmt.Println(path)
	return nil
}

func runAddress(args []string, addrType string, network chain.Network, required int) error {
	if len(args) == 0 {
		return fmt.Errorf("no public keys given")
	}
	pubKeys := make([][]byte, 0, len(args))
	for _, arg := range args {
		raw, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("invalid pubkey hex %q: %w", arg, err)
		}
		pubKeys = append(pubKeys, raw)
	}

	script, err := multisig.NewScript(chain.AddressType(addrType), network, required, pubKeys)
	if err != nil {
		return err
	}

	fmt.Printf("address: %s\n", script.Address)
	if script.RedeemScript != nil {
		fmt.Printf("redeem script: %x\n", script.RedeemScript)
	}
	if script.WitnessScript != nil {
		fmt.Printf("witness script: %x\n", script.WitnessScript)
	}
	return nil
}

func runWalletInit(name, addrType string, network chain.Network, required, total int, out string, log *logging.Logger) error {
	if name == "" {
		return fmt.Errorf("wallet name is required (-name)")
	}
	cfg, err := walletconfig.New(name, chain.AddressType(addrType), network, walletconfig.Quorum{
		RequiredSigners: required,
		TotalSigners:    total,
	})
	if err != nil {
		return err
	}
	if err := cfg.Save(out); err != nil {
		return err
	}

	root, _ := cfg.DefaultRoot()
	log.Info("Wallet configuration written",
		"file", out,
		"uuid", cfg.UUID,
		"root", root)
	return nil
}

func runMnemonic(args []string, words int) error {
	if len(args) == 0 {
		phrase, err := mnemonic.Generate(words)
		if err != nil {
			return err
		}
		fmt.Println(phrase)
		return nil
	}

	phrase := args[0]
	if !mnemonic.Validate(phrase) {
		return fmt.Errorf("mnemonic is invalid (%d words)", mnemonic.WordCount(phrase))
	}
	fmt.Printf("ok (%d words)\n", mnemonic.WordCount(phrase))
	return nil
}
