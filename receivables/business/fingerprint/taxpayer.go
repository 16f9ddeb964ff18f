package fingerprint

import "strings"

const taxpayerIDLength = 14

// CleanTaxpayerID strips every non-digit character from id.
func CleanTaxpayerID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateTaxpayerID reports whether id holds exactly 14 digits once cleaned.
// Fingerprint does not call it.
func ValidateTaxpayerID(id string) bool {
	return len(CleanTaxpayerID(id)) == taxpayerIDLength
}

// FormatTaxpayerID renders a 14-digit id as XX.XXX.XXX/XXXX-XX. Any other input is
// returned unchanged.
func FormatTaxpayerID(id string) string {
	digits := CleanTaxpayerID(id)
	if len(digits) != taxpayerIDLength {
		return id
	}
	return digits[0:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:14]
}
