package errors

import (
	"strings"
	"unicode"
)

// ValidateTypeName checks a surface type identifier before it is joined onto
// the asset root. The name doubles as a directory name, so anything that
// could climb out of the root is rejected.
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "surface type name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPath, "surface type name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "surface type name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPath, "surface type name %q contains invalid characters: %q", name, pattern)
		}
	}

	return nil
}
