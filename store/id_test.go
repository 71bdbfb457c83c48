package store

import (
	"errors"
	"testing"

	contractx "github.com/hostbridge/support-agent/agent/contract"
)

func TestParseCustomerID(t *testing.T) {
	t.Parallel()

	id, err := ParseCustomerID("42")
	if err != nil {
		t.Fatalf("ParseCustomerID() error = %v", err)
	}
	if id != 42 {
		t.Fatalf("unexpected id: %d", id)
	}

	id, err = ParseCustomerID("  7 ")
	if err != nil {
		t.Fatalf("ParseCustomerID() with spaces error = %v", err)
	}
	if id != 7 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestParseCustomerIDMalformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "abc", "12x", "-3", "0", "67e5"} {
		_, err := ParseCustomerID(raw)
		if err == nil {
			t.Fatalf("ParseCustomerID(%q) expected error", raw)
		}
		if !errors.Is(err, contractx.ErrValidation) {
			t.Fatalf("ParseCustomerID(%q) error = %v, want ErrValidation", raw, err)
		}
	}
}

func TestFormatCustomerIDRoundTrip(t *testing.T) {
	t.Parallel()

	id, err := ParseCustomerID(FormatCustomerID(123456))
	if err != nil {
		t.Fatalf("round trip error = %v", err)
	}
	if id != 123456 {
		t.Fatalf("round trip id = %d", id)
	}
}
