package phone_forward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolOf(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		assert.Equal(t, c-'0', symbolOf(c))
		assert.Equal(t, c, charOf(symbolOf(c)))
	}

	assert.Equal(t, uint8(10), symbolOf('*'))
	assert.Equal(t, uint8(11), symbolOf('#'))
	assert.Equal(t, byte('*'), charOf(starSymbol))
	assert.Equal(t, byte('#'), charOf(hashSymbol))

	for _, c := range []byte{'a', ' ', '+', '/', ':', 0} {
		assert.Equal(t, uint8(invalidSymbol), symbolOf(c), "char %q", c)
	}
}

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		num   string
		valid bool
	}{
		{"0", true},
		{"123", true},
		{"*#", true},
		{"12*34#", true},
		{"", false},
		{"1a2", false},
		{"12 3", false},
		{"+48123", false},
		{"123\x00", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidNumber(tt.num), "number %q", tt.num)
	}
}

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "123", "123", 0},
		{"digit order", "12", "13", -1},
		{"star after nine", "9", "*", -1},
		{"hash after star", "*", "#", -1},
		{"hash after digits", "#", "0", 1},
		{"prefix first", "12", "123", -1},
		{"longer after prefix", "123", "12", 1},
		{"first difference decides", "19", "2", -1},
		{"star in the middle", "1*0", "190", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareNumbers(tt.a, tt.b))
			assert.Equal(t, -tt.want, CompareNumbers(tt.b, tt.a))
		})
	}
}
