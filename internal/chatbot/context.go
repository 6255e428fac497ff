package chatbot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dotdo/internal/models"
)

// TaskStore is the slice of task persistence the assistant consumes.
type TaskStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Todo, error)
	FindByUserAndText(ctx context.Context, userID, fragment string) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Save(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id, userID string) error
}

// MemoStore is the slice of memo persistence the assistant consumes.
type MemoStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Memo, error)
	Create(ctx context.Context, memo *models.Memo) error
}

// Stats are the derived counters over one user's records.
type Stats struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	TotalMemos     int
}

// Snapshot is the ephemeral per-request aggregation of a user's tasks,
// memos and counters. It is computed fresh on every chatbot request,
// never cached, and discarded once the reply is formatted.
type Snapshot struct {
	Todos []models.Todo
	Memos []models.Memo
	Stats Stats
}

// loadSnapshot reads tasks and memos for the user. The two reads are
// independent and issued concurrently; both must finish before the
// counters are computed.
func (s *Service) loadSnapshot(ctx context.Context, userID string) (*Snapshot, error) {
	snap := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		todos, err := s.tasks.FindByUser(gctx, userID)
		if err != nil {
			return err
		}
		snap.Todos = todos
		return nil
	})
	g.Go(func() error {
		memos, err := s.memos.FindByUser(gctx, userID)
		if err != nil {
			return err
		}
		snap.Memos = memos
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.Stats.TotalTasks = len(snap.Todos)
	for _, todo := range snap.Todos {
		if todo.Completed {
			snap.Stats.CompletedTasks++
		} else {
			snap.Stats.PendingTasks++
		}
	}
	snap.Stats.TotalMemos = len(snap.Memos)
	return snap, nil
}

// progressPercent computes completed/total as a percentage, defining
// the empty list as 0 rather than a division fault.
func progressPercent(stats Stats) float64 {
	if stats.TotalTasks == 0 {
		return 0
	}
	return float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
}
