package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/stricto/internal/db"
	"github.com/alexanderramin/stricto/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// Subject buckets, badges, and the progress map are stored as JSON columns;
// the rest of the DNA is flat.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.DNA, error) {
	query := `SELECT user_id, exam, exam_date, exam_stage, level,
		subjects_weak, subjects_average, subjects_strong,
		daily_hours, chronotype, points, badges, tasks_completed, progress
		FROM profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var d domain.DNA
	var weak, average, strong, badges, progress string
	err := row.Scan(
		&d.UserID,
		&d.Goal.Exam,
		&d.Goal.Date,
		&d.Goal.Stage,
		&d.Level,
		&weak,
		&average,
		&strong,
		&d.Schedule.Hours,
		&d.Schedule.Chronotype,
		&d.Gamification.Points,
		&badges,
		&d.Gamification.TotalTasksCompleted,
		&progress,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	for col, dst := range map[string]any{
		weak:     &d.Subjects.Weak,
		average:  &d.Subjects.Average,
		strong:   &d.Subjects.Strong,
		badges:   &d.Gamification.Badges,
		progress: &d.Progress,
	} {
		if err := json.Unmarshal([]byte(col), dst); err != nil {
			return nil, fmt.Errorf("decoding profile column: %w", err)
		}
	}
	return &d, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, dna *domain.DNA) error {
	weak, err := jsonColumn(dna.Subjects.Weak)
	if err != nil {
		return err
	}
	average, err := jsonColumn(dna.Subjects.Average)
	if err != nil {
		return err
	}
	strong, err := jsonColumn(dna.Subjects.Strong)
	if err != nil {
		return err
	}
	badges, err := jsonColumn(dna.Gamification.Badges)
	if err != nil {
		return err
	}
	progress, err := jsonColumn(dna.Progress)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO profiles (user_id, exam, exam_date, exam_stage, level,
		subjects_weak, subjects_average, subjects_strong,
		daily_hours, chronotype, points, badges, tasks_completed, progress)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		dna.UserID,
		dna.Goal.Exam,
		dna.Goal.Date,
		dna.Goal.Stage,
		dna.Level,
		weak,
		average,
		strong,
		dna.Schedule.Hours,
		dna.Schedule.Chronotype,
		dna.Gamification.Points,
		badges,
		dna.Gamification.TotalTasksCompleted,
		progress,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// jsonColumn encodes a value for a JSON TEXT column, mapping nil slices and
// maps to their empty JSON form so Get can always unmarshal.
func jsonColumn(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding profile column: %w", err)
	}
	s := string(data)
	if s == "null" {
		switch v.(type) {
		case map[string][]string:
			s = "{}"
		default:
			s = "[]"
		}
	}
	return s, nil
}
