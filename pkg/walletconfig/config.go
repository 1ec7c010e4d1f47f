// Package walletconfig describes multisig wallet configurations and their
// on-disk YAML form.
package walletconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/klingon-exchange/klingon-hd/pkg/bip32"
	"github.com/klingon-exchange/klingon-hd/pkg/chain"
	"github.com/klingon-exchange/klingon-hd/pkg/multisig"
)

// Quorum is the m-of-n signing requirement.
type Quorum struct {
	RequiredSigners int `yaml:"required_signers"`
	TotalSigners    int `yaml:"total_signers"`
}

// Key describes one cosigner's extended public key and its origin path.
type Key struct {
	Name      string `yaml:"name"`
	BIP32Path string `yaml:"bip32_path"`
	XPub      string `yaml:"xpub"`
}

// Config describes a multisig wallet.
type Config struct {
	UUID        string            `yaml:"uuid"`
	Name        string            `yaml:"name"`
	Network     chain.Network     `yaml:"network"`
	AddressType chain.AddressType `yaml:"address_type"`
	Quorum      Quorum            `yaml:"quorum"`
	Keys        []Key             `yaml:"keys,omitempty"`

	// StartingAddressIndex is the first child index to derive addresses at.
	StartingAddressIndex uint32 `yaml:"starting_address_index"`
}

// New creates a wallet configuration with a fresh UUID and validates it.
func New(name string, addressType chain.AddressType, network chain.Network, quorum Quorum) (*Config, error) {
	cfg := &Config{
		UUID:        uuid.NewString(),
		Name:        name,
		Network:     network,
		AddressType: addressType,
		Quorum:      quorum,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultRoot returns the wallet's default BIP32 derivation root.
func (c *Config) DefaultRoot() (string, bool) {
	return multisig.DefaultBIP32Root(c.AddressType, c.Network)
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("wallet name cannot be blank")
	}
	if !chain.IsSupported(c.Network) {
		return fmt.Errorf("unknown network %q", c.Network)
	}
	if _, ok := multisig.DefaultBIP32Root(c.AddressType, c.Network); !ok {
		return fmt.Errorf("address type %q does not support multisig", c.AddressType)
	}
	if c.Quorum.RequiredSigners < 1 || c.Quorum.RequiredSigners > c.Quorum.TotalSigners {
		return fmt.Errorf("quorum %d-of-%d is invalid", c.Quorum.RequiredSigners, c.Quorum.TotalSigners)
	}
	if c.Quorum.TotalSigners > multisig.MaxSigners {
		return fmt.Errorf("too many signers: %d (max %d)", c.Quorum.TotalSigners, multisig.MaxSigners)
	}
	if len(c.Keys) > 0 && len(c.Keys) != c.Quorum.TotalSigners {
		return fmt.Errorf("got %d keys, quorum expects %d", len(c.Keys), c.Quorum.TotalSigners)
	}
	for _, key := range c.Keys {
		if err := bip32.Validate(key.BIP32Path); err != nil {
			return fmt.Errorf("key %q: %w", key.Name, err)
		}
	}
	return nil
}

// Save writes the configuration as YAML. The directory is created if
// needed; the file is readable only by the owner.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Load reads and validates a wallet configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
