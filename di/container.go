package di

import (
	"flock/config"
	"flock/driver/flock_db"
	"flock/gateway/article_store_gateway"
	"flock/gateway/feed_fetch_gateway"
	"flock/gateway/feed_store_gateway"
	"flock/gateway/group_stats_gateway"
	"flock/gateway/notifier_gateway"
	"flock/port/feed_store_port"
	"flock/port/notifier_port"
	"flock/usecase/ingest_feed_usecase"
	"flock/usecase/reset_feed_usecase"
	"flock/usecase/scheduler_usecase"
	"flock/utils/metrics"
	"flock/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	IngestFeedUsecase      *ingest_feed_usecase.IngestFeedUsecase
	SchedulerUsecase       *scheduler_usecase.SchedulerUsecase
	ResetFeedHealthUsecase *reset_feed_usecase.ResetFeedHealthUsecase

	FeedStore         feed_store_port.FeedStorePort
	Notifier          notifier_port.NotifierPort
	FlockDBRepository *flock_db.FlockDBRepository
	IngestionMetrics  *metrics.IngestionMetrics
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	hostRateLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.HostInterval)
	ingestionMetrics := metrics.NewIngestionMetrics()

	feedStoreGatewayImpl := feed_store_gateway.NewFeedStoreGateway(pool)
	articleStoreGatewayImpl := article_store_gateway.NewArticleStoreGateway(pool)
	groupStatsGatewayImpl := group_stats_gateway.NewGroupStatsGateway(pool)
	feedFetchGatewayImpl := feed_fetch_gateway.NewFeedFetchGateway(&cfg.Fetcher, hostRateLimiter)
	notifierGatewayImpl := notifier_gateway.NewWebhookNotifierGateway(&cfg.Outbox)

	ingestFeedUsecase := ingest_feed_usecase.NewIngestFeedUsecase(
		feedStoreGatewayImpl,
		articleStoreGatewayImpl,
		groupStatsGatewayImpl,
		feedFetchGatewayImpl,
		ingestionMetrics,
		cfg.Fetcher.FirstFetchLimit,
		cfg.Fetcher.RefreshFetchLimit,
	)
	schedulerUsecase := scheduler_usecase.NewSchedulerUsecase(
		feedStoreGatewayImpl,
		ingestFeedUsecase,
		cfg.Scheduler.BatchSize,
		cfg.Scheduler.WorkerLimit,
	)
	resetFeedHealthUsecase := reset_feed_usecase.NewResetFeedHealthUsecase(feedStoreGatewayImpl)

	flockDBRepository := flock_db.NewFlockDBRepository(pool)

	return &ApplicationComponents{
		IngestFeedUsecase:      ingestFeedUsecase,
		SchedulerUsecase:       schedulerUsecase,
		ResetFeedHealthUsecase: resetFeedHealthUsecase,
		FeedStore:              feedStoreGatewayImpl,
		Notifier:               notifierGatewayImpl,
		FlockDBRepository:      flockDBRepository,
		IngestionMetrics:       ingestionMetrics,
	}
}
