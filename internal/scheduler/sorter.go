package scheduler

import (
	"sort"
	"strings"

	"github.com/alexanderramin/stricto/internal/domain"
)

// habitTitles marks the daily-habit tasks that anchor the top of every
// protocol regardless of subject.
var habitTitles = []string{"Editorial", "Calculation Drill"}

func isHabit(title string) bool {
	for _, h := range habitTitles {
		if strings.Contains(title, h) {
			return true
		}
	}
	return false
}

func proficiencyTier(p domain.Proficiency) int {
	switch p {
	case domain.ProficiencyWeak:
		return 0
	case domain.ProficiencyStrong:
		return 2
	default:
		return 1
	}
}

// SortProtocol orders tasks for psychological energy: habits first, then
// weak subjects while focus is fresh, strong subjects last, and within a
// tier high-priority work before normal. The sort is stable so candidates
// from the same subject keep their generator order.
func SortProtocol(tasks []domain.Task, split domain.SubjectSplit) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		ah, bh := isHabit(a.Title), isHabit(b.Title)
		if ah != bh {
			return ah
		}

		at := proficiencyTier(Classify(a.Category, split))
		bt := proficiencyTier(Classify(b.Category, split))
		if at != bt {
			return at < bt
		}

		aHigh := a.Priority == domain.PriorityHigh
		bHigh := b.Priority == domain.PriorityHigh
		if aHigh != bHigh {
			return aHigh
		}
		return false
	})
}
