package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// fieldSeparator joins the normalized fields before hashing.
const fieldSeparator = "|"

// Fields are the normalized identity fields of a título.
type Fields struct {
	TaxpayerID string
	Amount     string
	DueDate    time.Time
}

// Normalize cleans the taxpayer id, fixes the amount to two decimals and parses the due
// date. It fails with ErrInvalidDateFormat when the due date cannot be normalized.
func Normalize(taxpayerID string, amount decimal.Decimal, dueDate string) (Fields, error) {
	parsed, err := ParseDueDate(dueDate)
	if err != nil {
		return Fields{}, err
	}

	return Fields{
		TaxpayerID: CleanTaxpayerID(taxpayerID),
		Amount:     NormalizeAmount(amount),
		DueDate:    parsed,
	}, nil
}

// Canonical is the string the fingerprint is computed over.
func (f Fields) Canonical() string {
	return strings.Join([]string{
		f.TaxpayerID,
		f.Amount,
		f.DueDate.Format(isoDateLayout),
	}, fieldSeparator)
}

// Hash is the lowercase hex SHA-256 of the canonical string.
func (f Fields) Hash() string {
	sum := sha256.Sum256([]byte(f.Canonical()))
	return hex.EncodeToString(sum[:])
}

// Fingerprint derives the stable identity of a título from its taxpayer id, amount and
// due date. Equal inputs under any supported encoding produce the same 64-char lowercase
// hex digest. It fails with ErrInvalidDateFormat when the due date cannot be normalized.
func Fingerprint(taxpayerID string, amount decimal.Decimal, dueDate string) (string, error) {
	fields, err := Normalize(taxpayerID, amount, dueDate)
	if err != nil {
		return "", err
	}
	return fields.Hash(), nil
}

// NormalizeAmount renders amount with exactly two fractional digits, rounding half away
// from zero.
func NormalizeAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
