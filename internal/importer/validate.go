package importer

import (
	"fmt"
	"time"
)

var (
	validLevels     = map[string]bool{"": true, "beginner": true, "repeater": true}
	validStages     = map[string]bool{"": true, "Prelims": true, "Mains": true}
	validPriorities = map[string]bool{"": true, "high": true, "normal": true}
	validStatuses   = map[string]bool{"full": true, "partial": true, "missed": true, "leave": true}
)

// ValidateBackupSchema checks the backup for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateBackupSchema(schema *BackupSchema) []error {
	var errs []error

	errs = append(errs, validateProfile(schema.UserDNA)...)

	taskIDs := make(map[string]bool)
	errs = append(errs, validateTasks(schema.Tasks, taskIDs)...)

	errs = append(errs, validateHistory(schema.History)...)

	return errs
}

func validateProfile(p *ProfileImport) []error {
	if p == nil {
		return []error{fmt.Errorf("userDNA is required")}
	}
	var errs []error

	if p.Goal.Exam == "" {
		errs = append(errs, fmt.Errorf("userDNA.goal.exam is required"))
	}
	if p.Goal.Date != "" && p.Goal.Date != "other" {
		if _, err := time.Parse("2006-01-02", p.Goal.Date); err != nil {
			errs = append(errs, fmt.Errorf("userDNA.goal.date: invalid date format %q (expected YYYY-MM-DD or \"other\")", p.Goal.Date))
		}
	}
	if !validStages[p.Goal.Stage] {
		errs = append(errs, fmt.Errorf("userDNA.goal.stage: invalid value %q", p.Goal.Stage))
	}
	if !validLevels[p.Level] {
		errs = append(errs, fmt.Errorf("userDNA.level: invalid value %q", p.Level))
	}
	if p.Schedule.Hours < 0 || p.Schedule.Hours > 24 {
		errs = append(errs, fmt.Errorf("userDNA.schedule.hours: %d out of range", p.Schedule.Hours))
	}
	if p.Gamification.Points < 0 {
		errs = append(errs, fmt.Errorf("userDNA.gamification.points must not be negative"))
	}
	if p.Gamification.TotalTasksCompleted < 0 {
		errs = append(errs, fmt.Errorf("userDNA.gamification.totalTasksCompleted must not be negative"))
	}

	return errs
}

func validateTasks(tasks []TaskImport, ids map[string]bool) []error {
	var errs []error

	for i, task := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if task.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[task.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, task.ID))
		} else {
			ids[task.ID] = true
		}
		if task.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if task.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be positive", prefix))
		}
		if !validPriorities[task.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, task.Priority))
		}
		if task.Created != "" {
			if _, err := time.Parse(time.RFC3339, task.Created); err != nil {
				errs = append(errs, fmt.Errorf("%s.created: invalid timestamp %q", prefix, task.Created))
			}
		}
	}

	return errs
}

func validateHistory(h map[string]DayImport) []error {
	var errs []error

	for day, rec := range h {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			errs = append(errs, fmt.Errorf("history[%q]: invalid date key (expected YYYY-MM-DD)", day))
		}
		if !validStatuses[rec.Status] {
			errs = append(errs, fmt.Errorf("history[%q].status: invalid value %q", day, rec.Status))
		}
		if rec.Percent < 0 || rec.Percent > 100 {
			errs = append(errs, fmt.Errorf("history[%q].percent: %d out of range", day, rec.Percent))
		}
	}

	return errs
}
