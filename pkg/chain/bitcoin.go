package chain

import "regexp"

func init() {
	// Bitcoin Mainnet
	Register(Mainnet, &Params{
		Name:    "Bitcoin",
		Network: Mainnet,

		// BIP44 coin type 0 on mainnet
		CoinType: 0,

		// Mainnet address prefixes
		PubKeyHashAddrID: 0x00, // 1...
		ScriptHashAddrID: 0x05, // 3...
		Bech32HRP:        "bc",
		WIF:              0x80,

		// BIP32 HD key prefixes (xprv/xpub)
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // xpub

		AddressPrefixPattern: regexp.MustCompile(`^(1|3|bc1)`),
	})

	// Bitcoin Testnet (testnet3)
	Register(Testnet, &Params{
		Name:    "Bitcoin Testnet",
		Network: Testnet,

		// Testnet uses coin type 1
		CoinType: 1,

		// Testnet address prefixes
		PubKeyHashAddrID: 0x6F, // m or n
		ScriptHashAddrID: 0xC4, // 2...
		Bech32HRP:        "tb",
		WIF:              0xEF,

		// BIP32 HD key prefixes (tprv/tpub)
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // tpub

		AddressPrefixPattern: regexp.MustCompile(`^(m|n|2|tb1)`),
	})
}
