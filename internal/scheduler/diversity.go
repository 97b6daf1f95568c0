package scheduler

import (
	"strings"

	"github.com/alexanderramin/stricto/internal/domain"
)

const (
	// RecentWindow is how many of the most recent task titles are held
	// against new candidates.
	RecentWindow = 7

	diversityPrefixLen = 20
)

// RecentTopics is the lowercased titles of recently assigned tasks, used to
// keep consecutive protocols from circling the same material.
type RecentTopics []string

// RecentTopicsFromTasks collects the last RecentWindow task titles,
// lowercased, in their stored order.
func RecentTopicsFromTasks(tasks []domain.Task) RecentTopics {
	start := 0
	if len(tasks) > RecentWindow {
		start = len(tasks) - RecentWindow
	}
	out := make(RecentTopics, 0, len(tasks)-start)
	for _, t := range tasks[start:] {
		out = append(out, strings.ToLower(t.Title))
	}
	return out
}

// Blocks reports whether a candidate title is too close to recent work. The
// comparison uses the first diversityPrefixLen characters of the lowercased
// candidate title, so retitled variants of the same topic still collide.
func (r RecentTopics) Blocks(title string) bool {
	key := strings.ToLower(title)
	if len(key) > diversityPrefixLen {
		key = key[:diversityPrefixLen]
	}
	if key == "" {
		return false
	}
	for _, recent := range r {
		if strings.Contains(recent, key) {
			return true
		}
	}
	return false
}
