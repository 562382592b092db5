package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "valid code", code: "IRC", want: true},
		{name: "valid degenerate code", code: "RIA", want: true},
		{name: "duplicate letters allowed", code: "RRR", want: true},
		{name: "too short", code: "IR", want: false},
		{name: "too long", code: "IRCA", want: false},
		{name: "letter outside alphabet", code: "IRX", want: false},
		{name: "lower case rejected", code: "irc", want: false},
		{name: "empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCode(tt.code))
		})
	}
}
