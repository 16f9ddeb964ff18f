package fingerprint

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const isoDateLayout = "2006-01-02"

// ErrInvalidDateFormat is matched by errors.Is for every due date that cannot be normalized.
var ErrInvalidDateFormat = errors.New("invalid date format")

// InvalidDateFormatError carries the rejected input.
type InvalidDateFormatError struct {
	Input string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date format: %q", e.Input)
}

func (e *InvalidDateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

type dueDatePattern struct {
	shape  *regexp.Regexp
	layout string
}

// dueDatePatterns are tried in order before the generic parser. The generic parser reads
// slash dates month-first, so DD/MM/YYYY must be claimed here.
var dueDatePatterns = []dueDatePattern{
	{shape: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), layout: "2006-01-02"},
	{shape: regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), layout: "02/01/2006"},
	{shape: regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`), layout: "02-01-2006"},
}

// NormalizeDueDate converts a due date into YYYY-MM-DD.
func NormalizeDueDate(dueDate string) (string, error) {
	parsed, err := ParseDueDate(dueDate)
	if err != nil {
		return "", err
	}
	return parsed.Format(isoDateLayout), nil
}

// ParseDueDate returns the calendar date of dueDate at midnight UTC.
func ParseDueDate(dueDate string) (time.Time, error) {
	value := strings.TrimSpace(dueDate)

	for _, p := range dueDatePatterns {
		if !p.shape.MatchString(value) {
			continue
		}
		parsed, err := time.Parse(p.layout, value)
		if err != nil {
			// Right shape but not a calendar date; the generic parser would not do better.
			return time.Time{}, &InvalidDateFormatError{Input: dueDate}
		}
		return parsed, nil
	}

	// Non-padded or dotted day-first dates land here and are read month-first.
	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, &InvalidDateFormatError{Input: dueDate}
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
