package common

import (
	"errors"
	"fmt"
	"testing"

	"aietrace/internal/aie"
)

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "Invalid SevNone",
			err:      NewError(aie.ErrSevNone, aie.OK),
			expected: "LIBRARY INTERNAL ERROR: Invalid Error Object",
		},
		{
			name:     "Invalid Sev Out of Bounds",
			err:      NewError(aie.ErrSeverity(99), aie.OK),
			expected: "LIBRARY INTERNAL ERROR: Invalid Error Object",
		},
		{
			name:     "Error Basic",
			err:      NewError(aie.ErrSevError, aie.ErrFail),
			expected: "ERROR:0x0001 (AIE_ERR_FAIL) [General failure.]; ",
		},
		{
			name:     "Warning with tile",
			err:      NewErrorWithLoc(aie.ErrSevWarn, aie.ErrDeviceWrite, aie.TileLoc{Col: 3, Row: 2}),
			expected: "WARN :0x0006 (AIE_ERR_DEVICE_WRITE) [Device rejected a configuration write.]; Tile=(3,2); ",
		},
		{
			name:     "Error with msg",
			err:      NewErrorMsg(aie.ErrSevError, aie.ErrEventRange, "event 300"),
			expected: "ERROR:0x0003 (AIE_ERR_EVENT_RANGE) [Event number does not fit the 8-bit edge detection field.]; event 300",
		},
		{
			name:     "Info with tile and msg",
			err:      NewErrorWithLocMsg(aie.ErrSevInfo, aie.ErrBadColumnRange, aie.TileLoc{Col: 0, Row: 0}, "cols 0..40"),
			expected: "INFO :0x0007 (AIE_ERR_BAD_COLUMN_RANGE) [Column range outside the tile array.]; Tile=(0,0); cols 0..40",
		},
		{
			name:     "Unknown error code",
			err:      NewError(aie.ErrSevError, 9999),
			expected: "ERROR:0x270f (unknown); ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.err.Error()
			if got != tc.expected {
				t.Errorf("Expected string: %q, got: %q", tc.expected, got)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("build network: %w", Errorf(aie.ErrDeviceWrite, "block %s", "SWE"))

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatalf("errors.As failed on %v", wrapped)
	}
	if e.Code != aie.ErrDeviceWrite {
		t.Errorf("code = %v, want %v", e.Code, aie.ErrDeviceWrite)
	}
	if !errors.Is(wrapped, NewError(aie.ErrSevError, aie.ErrDeviceWrite)) {
		t.Errorf("errors.Is should match on code")
	}
	if errors.Is(wrapped, NewError(aie.ErrSevError, aie.ErrFail)) {
		t.Errorf("errors.Is matched a different code")
	}
}
