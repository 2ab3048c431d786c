package order

import (
	"fmt"
	"regexp"
	"strconv"
)

// Número humano da OS: OS-0001, OS-0002, ... sequencial a partir do
// maior número existente. O padding para em 4 dígitos mas números
// maiores continuam válidos (OS-12345).
const NumberPrefix = "OS-"

var numberPattern = regexp.MustCompile(`^OS-[0-9]+$`)

func FormatNumber(n int) string {
	return fmt.Sprintf("%s%04d", NumberPrefix, n)
}

// ParseNumber extracts the sequence value from a well-formed order
// number. Returns 0 for anything that does not match the pattern.
func ParseNumber(s string) int {
	if !numberPattern.MatchString(s) {
		return 0
	}
	n, err := strconv.Atoi(s[len(NumberPrefix):])
	if err != nil {
		return 0
	}
	return n
}

// NextNumber computes the number following the given maximum sequence
// value. A ledger with no orders yields OS-0001.
func NextNumber(maxSeq int) string {
	return FormatNumber(maxSeq + 1)
}
