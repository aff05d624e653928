package workshop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSource_ManualWinsWhenNonBlank(t *testing.T) {
	for _, generated := range []string{"", "print(1)", Placeholder} {
		assert.Equal(t, "x = 1", ResolveSource("x = 1", generated))
		assert.Equal(t, "  x = 1\n", ResolveSource("  x = 1\n", generated))
	}
}

func TestResolveSource_FallsBackToGenerated(t *testing.T) {
	for _, manual := range []string{"", " ", "\n\t  \r\n"} {
		assert.Equal(t, "print(1)", ResolveSource(manual, "print(1)"))
		assert.Equal(t, "", ResolveSource(manual, ""))
	}
}

func TestHasUsableSource(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", " \n\t", false},
		{"placeholder", Placeholder, false},
		{"contains sentinel", "x = 1 // Your generated code will appear here", false},
		{"code", "func main() {}", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasUsableSource(tt.code))
		})
	}
}
