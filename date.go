package ythist

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// viewDateRE matches the localized date format used by the pt-BR Takeout
// export, e.g. "9 de set. de 2024, 22:16:56". A trailing timezone token
// ("BRT") may follow the match; it is not part of the pattern.
var viewDateRE = regexp.MustCompile(`(\d+)\s+de\s+(\w+\.)\s+de\s+(\d+),\s+(\d+):(\d+):(\d+)`)

// months maps the twelve pt-BR month abbreviations, as they appear in the
// export, to calendar months.
var months = map[string]time.Month{
	"jan.": time.January,
	"fev.": time.February,
	"mar.": time.March,
	"abr.": time.April,
	"mai.": time.May,
	"jun.": time.June,
	"jul.": time.July,
	"ago.": time.August,
	"set.": time.September,
	"out.": time.October,
	"nov.": time.November,
	"dez.": time.December,
}

// MatchViewDate returns the first substring of text that looks like a
// localized view date, or "" when none is present.
func MatchViewDate(text string) string {
	return viewDateRE.FindString(text)
}

// ParseViewDate normalizes a localized date string of the shape
// "9 de set. de 2024, 22:16:56 BRT" into a timestamp. The day may or may
// not be zero-padded; the trailing timezone token is ignored.
//
// Failure returns an EINVALID error and never panics: an unknown month
// abbreviation or an out-of-range component means the record keeps its raw
// date string but no timestamp.
func ParseViewDate(raw string) (time.Time, error) {
	m := viewDateRE.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, Errorf(EINVALID, "unrecognized date format: %q", raw)
	}

	month, ok := months[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, Errorf(EINVALID, "unknown month abbreviation %q in %q", m[2], raw)
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	min, _ := strconv.Atoi(m[5])
	sec, _ := strconv.Atoi(m[6])

	if hour > 23 || min > 59 || sec > 59 {
		return time.Time{}, Errorf(EINVALID, "time of day out of range in %q", raw)
	}

	t := time.Date(year, month, day, hour, min, sec, 0, time.UTC)

	// time.Date normalizes out-of-range days (e.g. "32 de jan." rolls into
	// February); treat that as a parse failure instead.
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return time.Time{}, Errorf(EINVALID, "day out of range in %q", raw)
	}

	return t, nil
}
