package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	src := "FLAG = abc"
	match := []int{0, 10, 0, 4, 7, 10, -1, -1}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"plain text", "def", "def"},
		{"whole match", `[\0]`, "[FLAG = abc]"},
		{"ampersand whole match", `[\&]`, "[FLAG = abc]"},
		{"groups", `\1=\2`, "FLAG=abc"},
		{"unmatched group is empty", `x\3y`, "xy"},
		{"group beyond pattern is empty", `x\9y`, "xy"},
		{"escaped backslash", `a\\1`, `a\1`},
		{"unknown escape kept", `a\nb`, `a\nb`},
		{"trailing backslash kept", `a\`, `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.template, src, match))
		})
	}
}

func TestExpandValue(t *testing.T) {
	assert.Equal(t, "abc def", ExpandValue(`\1 def`, "abc"))
	assert.Equal(t, "def", ExpandValue("def", "abc"))
	assert.Equal(t, `-I\1`, ExpandValue(`-I\\1`, "abc"))
	assert.Equal(t, "-Wall \\\n  -O2 -g", ExpandValue(`\1 -g`, "-Wall \\\n  -O2"))
	assert.Equal(t, `\0 \& \2 abc`, ExpandValue(`\0 \& \2 \1`, "abc"))
}
