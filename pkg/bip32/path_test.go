package bip32

import (
	"reflect"
	"testing"
)

func TestPathToSequence(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []uint32
	}{
		{"mixed hardening", "m/45'/1/99", []uint32{2147483693, 1, 99}},
		{"fully hardened", "m/45'/0'/0'", []uint32{2147483693, 2147483648, 2147483648}},
		{"unhardened", "m/0/1/2", []uint32{0, 1, 2}},
		{"single segment", "m/0", []uint32{0}},
		{"no root marker", "/45'/1", []uint32{2147483693, 1}},
		{"uppercase root", "M/44'/0", []uint32{2147483692, 0}},
		{"max hardened", "m/2147483647'", []uint32{4294967295}},
		{"max unhardened", "m/4294967295", []uint32{4294967295}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PathToSequence(tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PathToSequence(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSequenceToPath(t *testing.T) {
	tests := []struct {
		name string
		seq  []uint32
		want string
	}{
		{"mixed hardening", []uint32{2147483693, 1, 99}, "m/45'/1/99"},
		{"fully hardened", []uint32{2147483693, 2147483648, 2147483648}, "m/45'/0'/0'"},
		{"unhardened", []uint32{0, 1, 2}, "m/0/1/2"},
		{"offset boundary", []uint32{2147483647, 2147483648}, "m/2147483647/0'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SequenceToPath(tt.seq)
			if got != tt.want {
				t.Errorf("SequenceToPath(%v) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	paths := []string{
		"m/45'/0'/0'",
		"m/48'/1'/0'/2'",
		"m/45'/1/99",
		"m/0",
		"m/0/2147483646/2147483647",
		"m/44'/0'/0'/0/0",
	}

	for _, path := range paths {
		if err := Validate(path); err != nil {
			t.Fatalf("Validate(%q) = %v, want nil", path, err)
		}
		got := SequenceToPath(PathToSequence(path))
		if got != path {
			t.Errorf("round trip of %q = %q", path, got)
		}
	}
}

func TestHardeningOffsetIdentity(t *testing.T) {
	// Encoding a hardened index and decoding it back must be lossless
	// across the whole literal range.
	indices := []uint32{0, 1, 44, 45, 48, 1000000, MaxHardenedIndex}

	for _, index := range indices {
		hardened := index + HardeningOffset
		if hardened < HardeningOffset {
			t.Fatalf("index %d overflowed the hardening offset", index)
		}
		if hardened-HardeningOffset != index {
			t.Errorf("offset round trip of %d = %d", index, hardened-HardeningOffset)
		}
	}
}
