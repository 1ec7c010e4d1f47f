// Package bip32 converts and validates BIP32 hierarchical-deterministic
// derivation paths. Paths are strings of the form m/45'/0'/0'; a trailing
// apostrophe marks a hardened segment, whose integer form carries the 2^31
// hardening offset.
package bip32

import (
	"strconv"
	"strings"
)

// HardeningOffset is added to a segment's literal value to mark it hardened.
const HardeningOffset uint32 = 0x80000000

const (
	// MaxHardenedIndex is the largest literal value a hardened segment
	// may hold before the offset is applied.
	MaxHardenedIndex = 1<<31 - 1

	// MaxUnhardenedIndex is the largest value an unhardened segment may hold.
	MaxUnhardenedIndex = 1<<32 - 1
)

const hardeningMarker = "'"

// PathToSequence converts a derivation path string to its integer indices,
// applying the hardening offset to marked segments.
//
// The path is not validated here; call ValidatePath first. Segments that
// are not digits with an optional trailing marker produce undefined values.
func PathToSequence(path string) []uint32 {
	segments := strings.Split(strings.ToLower(path), "/")
	// Drop the leading "m" root marker (or the empty element of a
	// path that starts with "/").
	segments = segments[1:]

	sequence := make([]uint32, 0, len(segments))
	for _, segment := range segments {
		if strings.HasSuffix(segment, hardeningMarker) {
			n, _ := strconv.ParseUint(strings.TrimSuffix(segment, hardeningMarker), 10, 32)
			sequence = append(sequence, uint32(n)+HardeningOffset)
		} else {
			n, _ := strconv.ParseUint(segment, 10, 32)
			sequence = append(sequence, uint32(n))
		}
	}
	return sequence
}

// SequenceToPath renders integer indices back into a derivation path
// string. Indices at or above the hardening offset render as their literal
// value followed by the marker. Inverse of PathToSequence for paths whose
// unhardened segments stay below the offset; an unhardened segment at or
// above it is indistinguishable from a hardened one and re-renders with
// the marker.
func SequenceToPath(sequence []uint32) string {
	rendered := make([]string, len(sequence))
	for i, index := range sequence {
		if index >= HardeningOffset {
			rendered[i] = strconv.FormatUint(uint64(index-HardeningOffset), 10) + hardeningMarker
		} else {
			rendered[i] = strconv.FormatUint(uint64(index), 10)
		}
	}
	return "m/" + strings.Join(rendered, "/")
}
