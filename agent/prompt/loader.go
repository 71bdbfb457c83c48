package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/support.txt
var supportRaw string

// Support returns the trimmed system prompt for the support advisor. The
// embed is compile-time, so this is safe to call concurrently.
func Support() string {
	return strings.TrimSpace(supportRaw)
}
