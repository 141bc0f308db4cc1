package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"unauthorized", ErrUnauthorized},
		{"forbidden", ErrForbidden},
		{"invalid state", ErrInvalidState},
		{"missing status", ErrMissingStatus},
		{"unknown status", ErrUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	if stdErrors.Is(ErrUnauthorized, ErrForbidden) {
		t.Fatal("unauthorized and forbidden must stay distinct")
	}
	if stdErrors.Is(ErrInvalidState, ErrUnknownStatus) {
		t.Fatal("invalid state and unknown status must stay distinct")
	}
}
