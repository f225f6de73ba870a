package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds footprint names; KiCad itself has no hard limit but
// names end up as file names on every platform.
const maxNameLength = 200

// ValidateFootprintName validates a footprint name for use as an s-expression
// atom and as a file name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No whitespace or control characters
//   - No s-expression delimiters or quotes
//   - No path separators or traversal sequences
//   - Maximum length of 200 characters
func ValidateFootprintName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "footprint name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "footprint name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "footprint name contains whitespace or control characters: %q", name)
		}
	}

	dangerousPatterns := []string{
		"(",  // s-expression open
		")",  // s-expression close
		"\"", // quoted string
		"/",  // path separator
		"\\", // Windows path separator
		"..", // parent directory
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "footprint name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateLabel validates a single mounting-hole label (thread size or
// standard name). Labels become part of both the footprint name and its
// quoted description, so they follow the footprint name rules.
func ValidateLabel(label string) error {
	if err := ValidateFootprintName(label); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid label %q", label)
	}
	return nil
}
