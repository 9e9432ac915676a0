package hunt

import (
	"strings"

	"github.com/xrash/smetrics"
)

// FuzzyTitleThreshold is the Jaro-Winkler similarity above which two
// normalized titles at the same employer are considered the same posting.
// Fixed, not configurable.
const FuzzyTitleThreshold = 0.8

// Jaro-Winkler parameters (standard values).
const (
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// NormalizeTitle returns the comparison key for title matching:
// trimmed and lowercased.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// DuplicatePair records that Duplicate repeats an earlier job Original.
type DuplicatePair struct {
	OriginalID  string
	DuplicateID string
}

// FindDuplicate decides whether the candidate posting is already present in
// the corpus. It returns the matching record's ID and true, or "" and false
// when the candidate is novel. The boolean is the novelty signal; matched
// records may legitimately carry an empty ID (for example, admissions that
// were never stored).
//
// Rules are evaluated in order; URL identity is the strongest signal and
// short-circuits the textual heuristics:
//
//  1. exact URL match
//  2. among records at the same employer (case-insensitive):
//     a. normalized titles equal
//     b. either normalized title contains the other
//     c. Jaro-Winkler similarity above FuzzyTitleThreshold
//
// A missing employer on either side disables the title rules, so only the
// URL rule can fire.
func FindDuplicate(candidate JobRef, corpus []JobRef) (string, bool) {
	if candidate.URL != "" {
		for _, ref := range corpus {
			if ref.URL == candidate.URL {
				return ref.ID, true
			}
		}
	}

	if candidate.Employer == "" {
		return "", false
	}

	normalized := NormalizeTitle(candidate.Title)
	for _, ref := range corpus {
		if ref.Employer == "" || !strings.EqualFold(ref.Employer, candidate.Employer) {
			continue
		}
		if titlesMatch(normalized, NormalizeTitle(ref.Title)) {
			return ref.ID, true
		}
	}

	return "", false
}

// FindDuplicates scans a corpus in insertion order and reports first-match
// duplicate pairs: each record is compared against every earlier record
// (skipping earlier records already flagged as duplicates themselves) and
// stops at its first match. The result maps later entries to the earliest
// surviving original. This is not a transitive clustering, so three
// near-identical postings collapse to at most one reported pair per later
// entry.
func FindDuplicates(corpus []JobRef) []DuplicatePair {
	var pairs []DuplicatePair
	flagged := make(map[string]bool)

	for i := 1; i < len(corpus); i++ {
		for j := 0; j < i; j++ {
			if flagged[corpus[j].ID] {
				continue
			}
			if isDuplicatePair(corpus[i], corpus[j]) {
				pairs = append(pairs, DuplicatePair{
					OriginalID:  corpus[j].ID,
					DuplicateID: corpus[i].ID,
				})
				flagged[corpus[i].ID] = true
				break
			}
		}
	}

	return pairs
}

// isDuplicatePair applies the FindDuplicate rule set to a single pair.
func isDuplicatePair(a, b JobRef) bool {
	if a.URL != "" && a.URL == b.URL {
		return true
	}
	if a.Employer == "" || b.Employer == "" || !strings.EqualFold(a.Employer, b.Employer) {
		return false
	}
	return titlesMatch(NormalizeTitle(a.Title), NormalizeTitle(b.Title))
}

// titlesMatch applies the exact, substring, and fuzzy title rules to two
// normalized titles.
func titlesMatch(a, b string) bool {
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return smetrics.JaroWinkler(a, b, jwBoostThreshold, jwPrefixSize) > FuzzyTitleThreshold
}
