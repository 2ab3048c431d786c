package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumberPadsToFourDigits(t *testing.T) {
	assert.Equal(t, "OS-0001", FormatNumber(1))
	assert.Equal(t, "OS-0042", FormatNumber(42))
	assert.Equal(t, "OS-9999", FormatNumber(9999))
	// Acima de 9999 o padding para, mas o número segue válido.
	assert.Equal(t, "OS-12345", FormatNumber(12345))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1, ParseNumber("OS-0001"))
	assert.Equal(t, 12345, ParseNumber("OS-12345"))

	assert.Equal(t, 0, ParseNumber(""))
	assert.Equal(t, 0, ParseNumber("OS-"))
	assert.Equal(t, 0, ParseNumber("os-0001"))
	assert.Equal(t, 0, ParseNumber("OS-12a"))
	assert.Equal(t, 0, ParseNumber("XX-0001"))
}

func TestNextNumberIsStrictlyIncreasing(t *testing.T) {
	assert.Equal(t, "OS-0001", NextNumber(0))
	assert.Equal(t, "OS-0002", NextNumber(1))
	assert.Equal(t, "OS-10000", NextNumber(9999))

	prev := 0
	for i := 0; i < 50; i++ {
		n := ParseNumber(NextNumber(prev))
		assert.Greater(t, n, prev)
		prev = n
	}
}
