package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanInt(t *testing.T) {
	tests := []struct {
		want string
		n    int
	}{
		{want: "0", n: 0},
		{want: "999", n: 999},
		{want: "1,000", n: 1000},
		{want: "1,234,567", n: 1234567},
		{want: "-12,345", n: -12345},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanInt(tt.n))
	}
}
