// Package achievement awards points and badges for completed work. The
// engine is a pure transform over the profile's gamification state so every
// caller and test sees identical behaviour.
package achievement

// BadgeInfo describes one entry of the badge catalog.
type BadgeInfo struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Catalog lists every badge the app can display, including ones the engine
// does not award automatically (streak_21 and perfect_day are aspirational
// entries shown locked on the badges screen).
var Catalog = []BadgeInfo{
	{ID: "task_10", Title: "First Steps", Description: "Complete 10 Tasks successfully.", Icon: "footsteps"},
	{ID: "task_50", Title: "Half Century", Description: "Complete 50 Tasks.", Icon: "bicycle"},
	{ID: "task_100", Title: "Centurion", Description: "Hit the 100 Task Milestone.", Icon: "ribbon"},
	{ID: "streak_3", Title: "Hat-Trick", Description: "Maintain a 3 Day Streak.", Icon: "flame"},
	{ID: "streak_7", Title: "Week Warrior", Description: "One full week of discipline.", Icon: "flash"},
	{ID: "streak_21", Title: "Habit Master", Description: "21 Days: The habit is formed.", Icon: "medal"},
	{ID: "perfect_day", Title: "God Mode", Description: "Complete ALL tasks in a single day.", Icon: "checkmark-done-circle"},
}

// Lookup returns the catalog entry for a badge ID.
func Lookup(id string) (BadgeInfo, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return BadgeInfo{}, false
}
