package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain decimal", "4.3", 4.3, true},
		{"decimal with suffix", "4.3 out of 5", 4.3, true},
		{"percent sign", "50%", 50, true},
		{"currency prefix", "₹1,099", 1, true},
		{"integer", "24269", 24269, true},
		{"leading text", "about 12.5 units", 12.5, true},
		{"trailing dot", "12.", 12, true},
		{"empty", "", 0, false},
		{"no digits", "N/A", 0, false},
		{"symbols only", "---", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestSQLCastUsesSamePattern(t *testing.T) {
	expr := SQLCast("rating")
	assert.Contains(t, expr, "rating")
	assert.Contains(t, expr, pattern)
	assert.Contains(t, expr, "NULLIF")
}
