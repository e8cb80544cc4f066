// File path: internal/synth/netmask.go
package synth

import (
	"strconv"
	"strings"
)

const defaultPrefixLength = 24

// prefixLength converts a dotted-quad subnet mask to a CIDR prefix length.
// Octet bits are scanned most-significant-first and the scan stops at the
// first zero bit, so a non-contiguous mask truncates there instead of
// counting every set bit. Malformed or absent masks default to /24.
func prefixLength(mask string) int {
	parts := strings.Split(strings.TrimSpace(mask), ".")
	if len(parts) != 4 {
		return defaultPrefixLength
	}
	bits := 0
	for _, part := range parts {
		octet, err := strconv.Atoi(part)
		if err != nil || octet < 0 || octet > 255 {
			return defaultPrefixLength
		}
		for j := 7; j >= 0; j-- {
			if octet&(1<<j) == 0 {
				return bits
			}
			bits++
		}
	}
	return bits
}
