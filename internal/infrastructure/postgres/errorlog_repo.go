package postgres

import (
	"context"
	"fmt"
	"time"
)

// ErrorLogRepository is the sink for server-error stacks.
type ErrorLogRepository struct {
	db  DB
	now func() time.Time
}

func NewErrorLogRepository(db DB) *ErrorLogRepository {
	return &ErrorLogRepository{db: db, now: time.Now}
}

func (r *ErrorLogRepository) LogError(ctx context.Context, stack string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO error_logs (stack, date) VALUES ($1, $2)`,
		stack, r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("log error: %w", err)
	}
	return nil
}

func (r *ErrorLogRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM error_logs WHERE date < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune error logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
