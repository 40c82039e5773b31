package handler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateString(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"Ana", "Ana"},
		{nil, "null"},
		{true, "true"},
		{42.0, "42"},
		{-0.5, "-0.5"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{[]any{"a", nil, 1.0}, "a,,1"},
		{map[string]any{"a": 1.0}, "[object Object]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, templateString(tt.value))
	}
}
