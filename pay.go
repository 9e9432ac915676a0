package hunt

import (
	"regexp"
	"strconv"
	"strings"
)

// hoursPerYear annualizes hourly rates (40 h/week * 52 weeks).
const hoursPerYear = 2080

// Range separators seen in postings: hyphen, en/em dash, or the word "to".
const paySep = `\s*(?:-|–|—|to)\s*`

// Pay range patterns, tried in priority order. The first match wins.
var (
	// $150K - $200K, optionally suffixed /yr
	payRangeK = regexp.MustCompile(`\$(\d{2,3})[kK](?:/yr)?` + paySep + `\$(\d{2,3})[kK](?:/yr)?`)

	// Compensation-labeled comma-grouped range, e.g.
	// "Compensation Range: $120,000 - $180,000"
	payRangeLabeled = regexp.MustCompile(`(?is)compensation.{0,100}?\$(\d{1,3}),(\d{3})` + paySep + `\$(\d{1,3}),(\d{3})`)

	// Bare comma-grouped range: $120,000 - $180,000
	payRangeComma = regexp.MustCompile(`\$(\d{1,3}),(\d{3})` + paySep + `\$(\d{1,3}),(\d{3})`)

	// Hourly range: $45/hr - $60/hr (cents optional)
	payRangeHourly = regexp.MustCompile(`\$(\d{1,3}(?:\.\d{1,2})?)/hr` + paySep + `\$(\d{1,3}(?:\.\d{1,2})?)/hr`)
)

// ExtractPayRange parses an annual USD pay range out of posting text.
// Patterns are tried in priority order: $XXXk ranges, compensation-labeled
// comma-grouped ranges, bare comma-grouped ranges, hourly ranges (annualized
// at 2080 hours), then a permissive dollar-amount scanner. Absence of a
// match returns (nil, nil); when both bounds are present the result always
// satisfies min <= max.
func ExtractPayRange(text string) (payMin, payMax *int64) {
	defer func() {
		if payMin != nil && payMax != nil && *payMin > *payMax {
			payMin, payMax = payMax, payMin
		}
	}()

	if m := payRangeK.FindStringSubmatch(text); m != nil {
		return thousands(m[1]), thousands(m[2])
	}
	if m := payRangeLabeled.FindStringSubmatch(text); m != nil {
		return grouped(m[1], m[2]), grouped(m[3], m[4])
	}
	if m := payRangeComma.FindStringSubmatch(text); m != nil {
		return grouped(m[1], m[2]), grouped(m[3], m[4])
	}
	if m := payRangeHourly.FindStringSubmatch(text); m != nil {
		return hourly(m[1]), hourly(m[2])
	}

	return scanDollarAmounts(text)
}

// scanDollarAmounts is the fallback: walk the text and read the first two
// dollar amounts found. A trailing k multiplies by 1000, and a bare number
// under 1000 is assumed to be expressed in thousands as well, since postings
// rarely quote literal pay under $1000.
func scanDollarAmounts(text string) (payMin, payMax *int64) {
	runes := []rune(strings.ToLower(text))
	for i := 0; i < len(runes); i++ {
		if runes[i] != '$' {
			continue
		}
		var digits strings.Builder
		j := i + 1
		for j < len(runes) && (isDigit(runes[j]) || runes[j] == ',' || runes[j] == '.') {
			if isDigit(runes[j]) {
				digits.WriteRune(runes[j])
			}
			j++
		}
		if digits.Len() == 0 {
			continue
		}
		n, err := strconv.ParseInt(digits.String(), 10, 64)
		if err != nil {
			continue
		}
		if j < len(runes) && runes[j] == 'k' {
			n *= 1000
		} else if n < 1000 {
			n *= 1000
		}
		switch {
		case payMin == nil:
			payMin = &n
		case payMax == nil:
			payMax = &n
			return payMin, payMax
		}
		i = j - 1
	}
	return payMin, payMax
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// thousands parses "150" as 150000.
func thousands(s string) *int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	n *= 1000
	return &n
}

// grouped parses ("120", "000") as 120000.
func grouped(high, low string) *int64 {
	n, err := strconv.ParseInt(high+low, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// hourly parses an hourly rate and annualizes it.
func hourly(s string) *int64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int64(f * hoursPerYear)
	return &n
}
