package common

import (
	"math/big"
	"strings"
)

const (
	ETCDecimals = 18 // ETC has 18 decimals (wei)
)

// WeiToETC converts wei to ETC string without float precision loss
func WeiToETC(wei *big.Int) string {
	return formatWithDecimals(wei, ETCDecimals)
}

// WeiString renders wei as a base-10 integer string, "0" for nil
func WeiString(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return wei.String()
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value *big.Int, decimals int) string {
	s := WeiString(value)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	s = s[:pos] + "." + s[pos:]
	if neg {
		s = "-" + s
	}
	return s
}
