package dataset

import (
	"strings"
	"time"
)

// readMonthLayout is lenient on zero padding ("1/6/2024").
const readMonthLayout = "2/1/2006"

// ParseMonth parses a Month field, accepting unpadded day and month.
func ParseMonth(s string) (time.Time, bool) {
	t, err := time.Parse(readMonthLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MatchMonth reports whether the Month field refers to the date month.
//
// A field matches when it equals month, contains it as a whole token
// (e.g. "01/06/2024 00:00"), or parses to the same calendar day. A plain
// substring test would let "1/06/2024" match "21/06/2024".
func MatchMonth(field, month string) bool {
	field = strings.TrimSpace(field)
	if field == "" || month == "" {
		return false
	}
	if field == month || containsToken(field, month) {
		return true
	}
	a, okA := ParseMonth(field)
	b, okB := ParseMonth(month)
	return okA && okB && a.Equal(b)
}

func containsToken(s, token string) bool {
	for from := 0; from+len(token) <= len(s); {
		i := strings.Index(s[from:], token)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(token)
		if (start == 0 || !isDigit(s[start-1])) && (end == len(s) || !isDigit(s[end])) {
			return true
		}
		from = start + 1
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
