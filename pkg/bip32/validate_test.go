package bip32

import (
	"errors"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		mode Mode
		want error
	}{
		{"blank", "", ModeUnconstrained, ErrBlankPath},
		{"valid mixed", "m/45'/1/99", ModeUnconstrained, nil},
		{"valid no root marker", "/45'/1", ModeUnconstrained, nil},
		{"valid uppercase root", "M/45'/0'", ModeUnconstrained, nil},
		{"valid zero", "m/0", ModeUnconstrained, nil},
		{"bare root marker", "m", ModeUnconstrained, ErrInvalidPath},
		{"trailing slash", "m/45/", ModeUnconstrained, ErrInvalidPath},
		{"empty segment", "m//45", ModeUnconstrained, ErrInvalidPath},
		{"double marker", "m/45''", ModeUnconstrained, ErrInvalidPath},
		{"marker before digits", "m/'45", ModeUnconstrained, ErrInvalidPath},
		{"negative index", "m/-45", ModeUnconstrained, ErrInvalidPath},
		{"non-numeric", "m/45/x", ModeUnconstrained, ErrInvalidPath},
		{"no leading slash", "45/0", ModeUnconstrained, ErrInvalidPath},

		{"unhardened max", "m/4294967295", ModeUnconstrained, nil},
		{"unhardened too high", "/8589934592", ModeUnconstrained, ErrIndexTooHigh},
		{"unhardened just past max", "m/4294967296", ModeUnconstrained, ErrIndexTooHigh},
		{"hardened max", "m/2147483647'", ModeUnconstrained, nil},
		{"hardened too high", "m/2147483648'", ModeUnconstrained, ErrIndexTooHigh},
		{"past uint64", "m/99999999999999999999999", ModeUnconstrained, ErrIndexTooHigh},

		{"hardened ok", "m/45'/0'", ModeHardened, nil},
		{"hardened violated", "/45/0'", ModeHardened, ErrNotFullyHardened},
		{"unhardened ok", "m/45/0", ModeUnhardened, nil},
		{"unhardened violated", "/0'/0", ModeUnhardened, ErrHardenedSegments},

		{"leading zero", "m/01", ModeUnconstrained, ErrInvalidPath},
		{"double zero", "m/00", ModeUnconstrained, ErrInvalidPath},
		{"leading zero hardened", "m/045'", ModeUnconstrained, ErrInvalidPath},
		{"plain zero ok", "m/0/0'", ModeUnconstrained, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path, tt.mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidatePath(%q, %v) = %v, want %v", tt.path, tt.mode, err, tt.want)
			}
		})
	}
}

func TestValidateErrorMessages(t *testing.T) {
	// Callers surface these verbatim; keep them stable.
	tests := []struct {
		path string
		mode Mode
		msg  string
	}{
		{"", ModeUnconstrained, "path cannot be blank."},
		{"m/x", ModeUnconstrained, "path is invalid."},
		{"/45/0'", ModeHardened, "path must be fully-hardened."},
		{"/0'/0", ModeUnhardened, "path cannot include hardened segments."},
		{"/8589934592", ModeUnconstrained, "index is too high."},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, tt.mode)
		if err == nil || err.Error() != tt.msg {
			t.Errorf("ValidatePath(%q, %v) = %v, want message %q", tt.path, tt.mode, err, tt.msg)
		}
	}
}

func TestModeOrdering(t *testing.T) {
	// Structural failures win over mode failures; mode failures win over
	// segment bound failures.
	if err := ValidatePath("m//0'", ModeHardened); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("structural check should run before mode check, got %v", err)
	}
	if err := ValidatePath("/4294967295'/0", ModeHardened); !errors.Is(err, ErrNotFullyHardened) {
		t.Errorf("mode check should run before segment bounds, got %v", err)
	}
}

func TestValidateUnconstrainedAlias(t *testing.T) {
	if err := Validate("m/45'/1/99"); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
	if err := Validate("m/45''"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Validate = %v, want %v", err, ErrInvalidPath)
	}
}
