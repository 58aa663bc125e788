package util

import (
	"fmt"
	"strings"
	"time"
)

// SequenceID renders ids like wf-001 or REQ-005.
func SequenceID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// PaymentReference builds a reference of the form PAY-2025-005 where n
// is the current number of requests in the finance queue plus one.
func PaymentReference(year int, n int) string {
	return fmt.Sprintf("PAY-%d-%03d", year, n)
}

// InvoiceNumber builds a number of the form INV-2025-MS-001 from the
// vendor's two-letter prefix and a caller-supplied 0-999 value.
func InvoiceNumber(year int, vendor string, seq int) string {
	prefix := strings.ToUpper(vendor)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return fmt.Sprintf("INV-%d-%s-%03d", year, prefix, seq)
}

// StepID derives a step id from the clock, matching the editor's
// step-{timestamp} convention. Nanosecond precision keeps ids unique
// when steps are added back to back.
func StepID(now time.Time) string {
	return fmt.Sprintf("step-%d", now.UnixNano())
}

// ParsePercent reads the leading integer out of values like "94%".
func ParsePercent(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
