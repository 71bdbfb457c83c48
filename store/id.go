package store

import (
	"fmt"
	"strconv"
	"strings"

	contractx "github.com/hostbridge/support-agent/agent/contract"
)

// Customer ids cross the HTTP boundary as opaque strings. This is the one
// canonical encode/decode pair; every boundary crossing goes through it.

func ParseCustomerID(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: customer id is empty", contractx.ErrValidation)
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customer id %q", contractx.ErrValidation, raw)
	}
	return id, nil
}

func FormatCustomerID(id int64) string {
	return strconv.FormatInt(id, 10)
}
