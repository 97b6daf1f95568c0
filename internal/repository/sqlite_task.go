package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/stricto/internal/db"
	"github.com/alexanderramin/stricto/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. The position
// column preserves the scheduler's ordering across reads.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, title, category, duration_min, priority,
	meta_type, meta_strategy, meta_topic_id, meta_subject_key, completed, created_at`

func (r *SQLiteTaskRepo) List(ctx context.Context, userID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, taskID)
	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// ReplaceAll swaps the whole task list in one statement sequence. Callers
// wanting atomicity run it inside a UnitOfWork against a tx-backed repo.
func (r *SQLiteTaskRepo) ReplaceAll(ctx context.Context, userID string, tasks []domain.Task) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	query := `INSERT INTO tasks (id, user_id, position, title, category, duration_min, priority,
		meta_type, meta_strategy, meta_topic_id, meta_subject_key, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, t := range tasks {
		var metaType, metaStrategy, metaTopicID, metaSubjectKey any
		if t.Meta != nil {
			metaType, metaStrategy = t.Meta.Type, t.Meta.Strategy
			metaTopicID, metaSubjectKey = t.Meta.TopicID, t.Meta.SubjectKey
		}
		_, err := r.db.ExecContext(ctx, query,
			t.ID, userID, i, t.Title, string(t.Category), t.Duration, string(t.Priority),
			metaType, metaStrategy, metaTopicID, metaSubjectKey,
			boolToInt(t.Completed), t.Created.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting task %s: %w", t.ID, err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) SetCompleted(ctx context.Context, userID, taskID string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = ? WHERE user_id = ? AND id = ?`,
		boolToInt(completed), userID, taskID,
	)
	if err != nil {
		return fmt.Errorf("updating task completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var category, priority, created string
	var completed int
	var metaType, metaStrategy, metaTopicID, metaSubjectKey sql.NullString

	err := row.Scan(
		&t.ID, &t.Title, &category, &t.Duration, &priority,
		&metaType, &metaStrategy, &metaTopicID, &metaSubjectKey,
		&completed, &created,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Category = domain.Subject(category)
	t.Priority = domain.TaskPriority(priority)
	t.Completed = intToBool(completed)
	if ts, err := time.Parse(time.RFC3339, created); err == nil {
		t.Created = ts
	}
	if metaType.Valid || metaStrategy.Valid || metaTopicID.Valid || metaSubjectKey.Valid {
		t.Meta = &domain.TaskMeta{
			Type:       metaType.String,
			Strategy:   metaStrategy.String,
			TopicID:    metaTopicID.String,
			SubjectKey: metaSubjectKey.String,
		}
	}
	return &t, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
