// Package mnemonic wraps BIP39 mnemonic generation and validation.
// Seeds and keys are never derived here.
package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// Generate returns a new mnemonic with the given word count
// (12, 15, 18, 21 or 24).
func Generate(words int) (string, error) {
	bits, ok := entropyBits[words]
	if !ok {
		return "", fmt.Errorf("unsupported word count %d", words)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// Validate checks that the mnemonic's words and checksum are valid.
func Validate(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// WordCount returns the number of words in a mnemonic.
func WordCount(mnemonic string) int {
	return len(strings.Fields(mnemonic))
}
