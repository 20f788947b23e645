//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		in     string
		want   uint
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseUint(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nothing", nil, []string{}},
		{"json array", []string{`["Go", "Docker"]`}, []string{"Go", "Docker"}},
		{"comma separated", []string{"Go, Docker ,,K8s"}, []string{"Go", "Docker", "K8s"}},
		{"repeated fields", []string{"Go", " Docker "}, []string{"Go", "Docker"}},
		{"broken json falls back to comma split", []string{`[Go`}, []string{"[Go"}},
		{"blank values", []string{"", "  "}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in...))
		})
	}
}
