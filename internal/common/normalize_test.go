package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "case folded", in: "Simpson Chubby 2", want: "simpson chubby 2"},
		{name: "whitespace collapsed", in: "  Jayaruh   #441\tw/ AP  Shave Co ", want: "jayaruh #441 w/ ap shave co"},
		{name: "already normalized", in: "semogue 610", want: "semogue 610"},
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: "   \t  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
