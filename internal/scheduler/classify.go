package scheduler

import (
	"strings"

	"github.com/alexanderramin/stricto/internal/domain"
)

// entryMatches reports whether a self-reported subject entry refers to the
// canonical subject. An entry matches when, uppercased, it is a substring of
// the subject code; "GK" entries additionally match GA. This substring
// matching is the long-standing profile convention, so changing it would
// reclassify existing profiles. Keep the rule here and nowhere else.
func entryMatches(sub domain.Subject, entry string) bool {
	e := strings.ToUpper(strings.TrimSpace(entry))
	if e == "" {
		return false
	}
	if strings.Contains(string(sub), e) {
		return true
	}
	return sub == domain.SubjectGA && strings.Contains(e, "GK")
}

// Classify resolves a subject's proficiency from the profile's buckets.
// A subject listed in both weak and strong counts as strong; a subject in
// neither is average.
func Classify(sub domain.Subject, split domain.SubjectSplit) domain.Proficiency {
	p := domain.ProficiencyAverage
	for _, entry := range split.Weak {
		if entryMatches(sub, entry) {
			p = domain.ProficiencyWeak
			break
		}
	}
	for _, entry := range split.Strong {
		if entryMatches(sub, entry) {
			p = domain.ProficiencyStrong
			break
		}
	}
	return p
}

// PriorityList orders the canonical subjects for a protocol run: the user's
// weak subjects first (in their declared order, restricted to canonical
// codes), then every remaining canonical subject in fallback order. The
// result always holds all four canonical subjects exactly once.
func PriorityList(weak []string) []domain.Subject {
	var out []domain.Subject
	seen := make(map[domain.Subject]bool, len(domain.CanonicalSubjects))

	appendSubject := func(s domain.Subject) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, entry := range weak {
		e := domain.Subject(strings.ToUpper(strings.TrimSpace(entry)))
		for _, canonical := range domain.CanonicalSubjects {
			if e == canonical {
				appendSubject(canonical)
			}
		}
	}
	for _, canonical := range domain.CanonicalSubjects {
		appendSubject(canonical)
	}
	return out
}
