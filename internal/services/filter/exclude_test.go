package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startpage/internal/services/filter"
	"startpage/internal/testutil"
)

func TestNewExcludeFilter_NoPatterns(t *testing.T) {
	_, err := filter.NewExcludeFilter(nil, testutil.Logger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no patterns")
}

func TestNewExcludeFilter_InvalidPattern(t *testing.T) {
	_, err := filter.NewExcludeFilter([]string{"[unclosed"}, testutil.Logger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex pattern")
}

func TestExcludeFilter_ShouldExclude(t *testing.T) {
	f, err := filter.NewExcludeFilter([]string{"^Internal", "(?i)secret"}, testutil.Logger())
	require.NoError(t, err)

	tests := []struct {
		title    string
		excluded bool
	}{
		{"Internal Wiki", true},
		{"My Internal Notes", false},
		{"Top Secret Dashboard", true},
		{"GitHub", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.excluded, f.ShouldExclude(tt.title))
		})
	}
}

func TestNoOpFilter_NeverExcludes(t *testing.T) {
	f := filter.NewNoOpFilter()

	assert.False(t, f.ShouldExclude("Internal Wiki"))
	assert.False(t, f.ShouldExclude(""))
}
