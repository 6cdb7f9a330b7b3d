package job

import (
	"context"

	"flock/domain"
	"flock/utils/logger"
)

// BatchTicker runs one scheduler pass. Satisfied by
// scheduler_usecase.SchedulerUsecase.
type BatchTicker interface {
	Tick(ctx context.Context, batchSize int) (*domain.BatchResult, error)
}

// SweepJob returns a JobScheduler function that runs one due-feed sweep per
// invocation. Tick errors (due-feed selection failing) surface to the
// scheduler's error log; per-feed failures are already part of the batch
// result.
func SweepJob(ticker BatchTicker) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		result, err := ticker.Tick(ctx, 0)
		if err != nil {
			return err
		}
		if len(result.Succeeded) == 0 && len(result.Failed) == 0 {
			return nil
		}

		newArticles := 0
		for _, refresh := range result.Succeeded {
			newArticles += refresh.NewArticleCount
		}
		logger.SafeInfoContext(ctx, "sweep completed",
			"refreshed", len(result.Succeeded),
			"failed", len(result.Failed),
			"new_articles", newArticles,
		)
		return nil
	}
}
