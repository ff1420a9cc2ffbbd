package idcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMRZLine(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "serial with separators",
			input:    "OMA<OMA-2026-001",
			expected: "OMA<OMA<2026<001<<<<<<<<<<<<<<",
		},
		{
			name:     "name with filler",
			input:    "KONE<<AICHA",
			expected: "KONE<<AICHA<<<<<<<<<<<<<<<<<<<",
		},
		{
			name:     "lowercase is uppercased, spaces become filler",
			input:    "van der Berg",
			expected: "VAN<DER<BERG<<<<<<<<<<<<<<<<<<",
		},
		{
			name:     "characters outside the charset are dropped",
			input:    "KONÉ",
			expected: "KON<<<<<<<<<<<<<<<<<<<<<<<<<<<",
		},
		{
			name:     "long input is truncated to the line width",
			input:    "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
			expected: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := mrzLine(tc.input)
			assert.Len(t, line, 30)
			assert.Equal(t, tc.expected, line)
		})
	}
}
