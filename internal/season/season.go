package season

import (
	"fmt"
	"regexp"
	"strconv"
)

// Seasons appear in the store in several surface encodings: "2024/25",
// "2024-25" and occasionally the long form "1999-2000". All comparisons must
// go through Equals; comparing raw strings misses cross-format matches.
var (
	slashForm = regexp.MustCompile(`^(\d{4})/(\d{2}|\d{4})$`)
	dashForm  = regexp.MustCompile(`^(\d{4})-(\d{2}|\d{4})$`)
)

// ToSlash converts a dash-form season to the canonical slash short form
// ("2024-25" -> "2024/25", "1999-2000" -> "1999/00"). Strings that don't look
// like a year pair pass through unchanged; unknown formats are treated as
// already canonical.
func ToSlash(s string) string {
	if m := dashForm.FindStringSubmatch(s); m != nil {
		return m[1] + "/" + shortYear(m[2])
	}
	if m := slashForm.FindStringSubmatch(s); m != nil {
		return m[1] + "/" + shortYear(m[2])
	}
	return s
}

// ToDash is the inverse of ToSlash, same passthrough policy.
func ToDash(s string) string {
	if m := slashForm.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + shortYear(m[2])
	}
	if m := dashForm.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + shortYear(m[2])
	}
	return s
}

// Equals reports whether two season strings name the same logical season,
// regardless of surface encoding.
func Equals(a, b string) bool {
	return a == b || ToSlash(a) == ToSlash(b) || ToDash(a) == ToDash(b)
}

// Previous returns the season immediately preceding the given one, in the same
// separator style as the input ("2024/25" -> "2023/24"). It returns the empty
// string when the input doesn't match a recognized year-pair pattern; callers
// treat empty as "unknown".
func Previous(s string) string {
	sep := "/"
	m := slashForm.FindStringSubmatch(s)
	if m == nil {
		sep = "-"
		m = dashForm.FindStringSubmatch(s)
	}
	if m == nil {
		return ""
	}
	start, err := strconv.Atoi(m[1])
	if err != nil || start <= 0 {
		return ""
	}
	return fmt.Sprintf("%04d%s%02d", start-1, sep, start%100)
}

// shortYear reduces a 4-digit end year to its last two digits.
func shortYear(y string) string {
	if len(y) == 4 {
		return y[2:]
	}
	return y
}
