package utils

import (
	"os"
	"strings"
)

// SafeEnv returns the value of key, or fallback when the variable is unset
// or blank. Values are trimmed, so a variable set to spaces counts as unset.
func SafeEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
