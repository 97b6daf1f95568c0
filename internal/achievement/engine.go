package achievement

import "github.com/alexanderramin/stricto/internal/domain"

const (
	// PointsPerTask is awarded for every task completion.
	PointsPerTask = 10

	// BadgeBonus is awarded once per newly unlocked badge.
	BadgeBonus = 50
)

// Stats is the evidence a rule is judged against. StreakDays comes from the
// compliance history, not the gamification record.
type Stats struct {
	TotalTasksCompleted int
	StreakDays          int
}

type rule struct {
	badgeID  string
	unlocked func(Stats) bool
}

// rules are the automatically awarded subset of the catalog.
var rules = []rule{
	{"task_10", func(s Stats) bool { return s.TotalTasksCompleted >= 10 }},
	{"task_50", func(s Stats) bool { return s.TotalTasksCompleted >= 50 }},
	{"task_100", func(s Stats) bool { return s.TotalTasksCompleted >= 100 }},
	{"streak_3", func(s Stats) bool { return s.StreakDays >= 3 }},
	{"streak_7", func(s Stats) bool { return s.StreakDays >= 7 }},
}

// Result reports what one completion earned.
type Result struct {
	PointsAwarded int
	NewBadges     []BadgeInfo
}

// OnTaskCompleted applies one task completion to the gamification record:
// base points, the completion counter, and any badges whose conditions are
// now met. Already-held badges are never re-awarded, so replaying a
// completion can only move the counters forward.
func OnTaskCompleted(g *domain.Gamification, streakDays int) Result {
	g.Points += PointsPerTask
	g.TotalTasksCompleted++

	res := Result{PointsAwarded: PointsPerTask}
	stats := Stats{TotalTasksCompleted: g.TotalTasksCompleted, StreakDays: streakDays}

	for _, r := range rules {
		if g.HasBadge(r.badgeID) || !r.unlocked(stats) {
			continue
		}
		g.Badges = append(g.Badges, r.badgeID)
		g.Points += BadgeBonus
		res.PointsAwarded += BadgeBonus
		if info, ok := Lookup(r.badgeID); ok {
			res.NewBadges = append(res.NewBadges, info)
		}
	}
	return res
}

// Rank maps lifetime completions to the profile's display rank.
func Rank(totalTasksCompleted int) string {
	switch {
	case totalTasksCompleted > 100:
		return "VETERAN"
	case totalTasksCompleted > 50:
		return "WARRIOR"
	case totalTasksCompleted > 10:
		return "SOLDIER"
	default:
		return "ROOKIE"
	}
}
