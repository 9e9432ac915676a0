package hunt

import "strings"

// maxJobCodeLen caps how many characters a labeled job code may run.
const maxJobCodeLen = 50

// jobCodeLabels are the requisition-identifier labels seen in postings,
// matched case-insensitively in this order.
var jobCodeLabels = []string{
	"job id:",
	"job code:",
	"requisition id:",
	"req id:",
	"req#:",
	"req #:",
	"job #:",
	"job number:",
	"job no:",
	"reference:",
	"ref:",
}

// ExtractJobCode finds an employer-assigned requisition identifier in
// posting text. It tries labeled fields first, then the LinkedIn
// /job/view/<digits> URL pattern, then a bare JR-prefixed code.
// Returns "" when nothing matches.
func ExtractJobCode(text string) string {
	lower := strings.ToLower(text)

	for _, label := range jobCodeLabels {
		idx := strings.Index(lower, label)
		if idx < 0 {
			continue
		}
		after := text[idx+len(label):]
		after = strings.TrimLeft(after, " \t\r\n")
		code := takeWhile(after, isJobCodeRune)
		if code != "" && len(code) <= maxJobCodeLen {
			return code
		}
	}

	if idx := strings.Index(text, "/job/view/"); idx >= 0 {
		digits := takeWhile(text[idx+len("/job/view/"):], isDigit)
		if digits != "" {
			return "linkedin-" + digits
		}
	}

	if idx := strings.Index(text, "JR"); idx >= 0 {
		code := takeWhile(text[idx+2:], func(r rune) bool {
			return isAlphanumeric(r) || r == '-'
		})
		if len(code) >= 4 && len(code) <= 20 {
			return "JR" + code
		}
	}

	return ""
}

// takeWhile returns the leading run of s whose runes satisfy pred.
func takeWhile(s string, pred func(rune) bool) string {
	for i, r := range s {
		if !pred(r) {
			return s[:i]
		}
	}
	return s
}

func isAlphanumeric(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || isDigit(r)
}

func isJobCodeRune(r rune) bool {
	return isAlphanumeric(r) || r == '-' || r == '_' || r == '/'
}
