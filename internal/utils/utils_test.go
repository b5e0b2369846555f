package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startpage/internal/errors"
	"startpage/internal/utils"
)

func TestValidateTargetURL_Valid(t *testing.T) {
	tests := []string{
		"file:///home/user/start.html",
		"http://localhost:8080/",
		"https://example.com/page?q=1",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.NoError(t, utils.ValidateTargetURL(raw))
		})
	}
}

func TestValidateTargetURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"space", "file:///home/user/my page.html"},
		{"tab", "http://example.com/\tpath"},
		{"double quote", `http://example.com/");lockPref("x`},
		{"ftp scheme", "ftp://example.com/start.html"},
		{"no scheme", "example.com/start.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateTargetURL(tt.raw)

			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
		})
	}
}

func TestSanitizeIconFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "GitHub", "GitHub"},
		{"spaces collapse", "My  Start   Page", "My_Start_Page"},
		{"slashes", "docs/go/stdlib", "docs_go_stdlib"},
		{"backslashes", `c:\icons\site`, "c_icons_site"},
		{"cyrillic preserved", "Почта Mail", "Почта_Mail"},
		{"percent decoded", "caf%C3%A9", "café"},
		{"punctuation stripped", "news (tech) [daily]!", "news_tech_daily"},
		{"empty", "", "unnamed"},
		{"only punctuation", "@#$%", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.SanitizeIconFilename(tt.input))
		})
	}
}

func TestSanitizeIconFilename_Truncates(t *testing.T) {
	long := strings.Repeat("я", 200)

	result := utils.SanitizeIconFilename(long)

	assert.Equal(t, 120, len([]rune(result)))
}

func TestASCIIFallbackFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed", "Почта_Mail.ico", "_Mail.ico"},
		{"ascii kept", "github-dark_v2.png", "github-dark_v2.png"},
		{"all unicode", "Почта", "icon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.ASCIIFallbackFilename(tt.input))
		})
	}
}
