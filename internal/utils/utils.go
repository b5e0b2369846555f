package utils

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"startpage/internal/errors"
)

// URL validation utilities

// allowedSchemes are the URL schemes accepted for a start page target.
var allowedSchemes = map[string]bool{
	"file":  true,
	"http":  true,
	"https": true,
}

// ValidateTargetURL checks that a start page URL is safe to splice into a
// quoted preference literal.
func ValidateTargetURL(raw string) error {
	if raw == "" {
		return errors.NewValidationError("url", raw, "required", "target URL must not be empty")
	}
	if strings.ContainsAny(raw, " \t\n\"") {
		return errors.NewValidationError("url", raw, "characters",
			"target URL must not contain whitespace or double quotes")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.NewValidationError("url", raw, "syntax", "target URL is not a valid URI")
	}
	if !allowedSchemes[parsed.Scheme] {
		return errors.NewValidationError("url", raw, "scheme",
			"target URL scheme must be file, http, or https")
	}

	return nil
}

// Filename sanitization utilities

const maxFilenameRunes = 120

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeIconFilename returns a safe filename derived from a bookmark title.
// Unicode letters and digits are preserved so non-ASCII titles keep their
// names; slashes, control characters, and other punctuation are stripped.
func SanitizeIconFilename(name string) string {
	if name == "" {
		return "unnamed"
	}

	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = whitespaceRun.ReplaceAllString(name, "_")

	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	sanitized := b.String()

	if runes := []rune(sanitized); len(runes) > maxFilenameRunes {
		sanitized = string(runes[:maxFilenameRunes])
	}
	if sanitized == "" {
		return "file"
	}
	return sanitized
}

// ASCIIFallbackFilename returns an ASCII-only filename for filesystems that
// reject unicode names.
func ASCIIFallbackFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	fallback := b.String()
	if fallback == "" {
		return "icon"
	}
	if len(fallback) > maxFilenameRunes {
		fallback = fallback[:maxFilenameRunes]
	}
	return fallback
}
