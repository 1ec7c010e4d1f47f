package bip32

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Mode constrains which hardening forms a path may use.
type Mode int

const (
	// ModeUnconstrained accepts any mix of hardened and unhardened segments.
	ModeUnconstrained Mode = iota

	// ModeHardened requires every segment to be hardened.
	ModeHardened

	// ModeUnhardened rejects any hardened segment.
	ModeUnhardened
)

// Validation failures. ValidatePath returns exactly one of these sentinel
// values; use errors.Is to branch on the kind. The messages are stable and
// safe to surface to users.
var (
	ErrBlankPath        = errors.New("path cannot be blank.")
	ErrInvalidPath      = errors.New("path is invalid.")
	ErrNotFullyHardened = errors.New("path must be fully-hardened.")
	ErrHardenedSegments = errors.New("path cannot include hardened segments.")
	ErrIndexTooHigh     = errors.New("index is too high.")
)

var (
	pathPattern            = regexp.MustCompile(`^(m)?(/[0-9]+'?)+$`)
	fullyHardenedPattern   = regexp.MustCompile(`^(m)?(/[0-9]+')+$`)
	fullyUnhardenedPattern = regexp.MustCompile(`^(m)?(/[0-9]+)+$`)
)

// Validate checks a derivation path with no hardening constraint.
func Validate(path string) error {
	return ValidatePath(path, ModeUnconstrained)
}

// ValidatePath checks the structure and segment bounds of a derivation
// path. Checks run in order and stop at the first failure: blank path,
// overall structure, hardening mode, then each segment left to right.
// The path is lower-cased first, so "M/45'" is accepted.
func ValidatePath(path string, mode Mode) error {
	if path == "" {
		return ErrBlankPath
	}

	lower := strings.ToLower(path)
	if !pathPattern.MatchString(lower) {
		return ErrInvalidPath
	}

	switch mode {
	case ModeHardened:
		if !fullyHardenedPattern.MatchString(lower) {
			return ErrNotFullyHardened
		}
	case ModeUnhardened:
		if !fullyUnhardenedPattern.MatchString(lower) {
			return ErrHardenedSegments
		}
	}

	// First element is the "m" root marker or empty; the structural
	// pattern guarantees it carries no index.
	for _, segment := range strings.Split(lower, "/")[1:] {
		if err := validateSegment(segment); err != nil {
			return err
		}
	}
	return nil
}

// validateSegment checks a single path segment. The parsed integer must
// re-stringify to exactly the numeric text, which rejects leading zeros
// ("0" is valid, "00" and "01" are not), and must fit the bound for its
// hardening state.
func validateSegment(segment string) error {
	if segment == "" {
		return ErrInvalidPath
	}

	numeric := segment
	hardened := strings.HasSuffix(segment, hardeningMarker)
	if hardened {
		numeric = strings.TrimSuffix(segment, hardeningMarker)
	}

	n, err := strconv.ParseUint(numeric, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return ErrIndexTooHigh
		}
		return ErrInvalidPath
	}
	if strconv.FormatUint(n, 10) != numeric {
		return ErrInvalidPath
	}

	limit := uint64(MaxUnhardenedIndex)
	if hardened {
		limit = MaxHardenedIndex
	}
	if n > limit {
		return ErrIndexTooHigh
	}
	return nil
}
