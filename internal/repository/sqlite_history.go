package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stricto/internal/db"
	"github.com/alexanderramin/stricto/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Get(ctx context.Context, userID string) (domain.History, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, status, leave_type, percent FROM history WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	h := make(domain.History)
	for rows.Next() {
		var day, status, leaveType string
		var percent int
		if err := rows.Scan(&day, &status, &leaveType, &percent); err != nil {
			return nil, fmt.Errorf("scanning history day: %w", err)
		}
		h[day] = domain.DayRecord{Status: domain.DayStatus(status), Type: leaveType, Percent: percent}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return h, nil
}

func (r *SQLiteHistoryRepo) UpsertDays(ctx context.Context, userID string, days domain.History) error {
	query := `INSERT OR REPLACE INTO history (user_id, day, status, leave_type, percent)
		VALUES (?, ?, ?, ?, ?)`
	for day, rec := range days {
		_, err := r.db.ExecContext(ctx, query, userID, day, string(rec.Status), rec.Type, rec.Percent)
		if err != nil {
			return fmt.Errorf("upserting history day %s: %w", day, err)
		}
	}
	return nil
}

func (r *SQLiteHistoryRepo) ReplaceAll(ctx context.Context, userID string, h domain.History) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return r.UpsertDays(ctx, userID, h)
}
