package repository

import (
	"context"
	"time"
)

type LogErrorRepository interface {
	LogError(ctx context.Context, stack string) error
}

type PruneErrorLogsRepository interface {
	// PruneBefore deletes error records dated before cutoff and returns how many were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
