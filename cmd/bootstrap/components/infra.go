package components

import (
	"context"
	"fmt"
	"log/slog"

	"gift-commerce/internal/infra/escalation"
	"gift-commerce/internal/infra/gateway"
	"gift-commerce/internal/infra/metrics"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/staging"
	"gift-commerce/internal/infra/token"
	"gift-commerce/internal/pkg/clock"
	"gift-commerce/internal/pkg/config"
	"gift-commerce/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	StagingBackendRedis    = "redis"
	StagingBackendPostgres = "postgres"
	StagingBackendMemory   = "memory"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			token.NewUUIDFactory,
			fx.As(new(shared.TokenFactory)),
		),
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(shared.GatewayClient)),
		),
		fx.Annotate(
			NewPaymentMetrics,
			fx.As(new(shared.PaymentMetrics)),
			fx.As(new(staging.SweepRecorder)),
		),
		NewEscalator,
		NewStagingStore,
	),
)

func NewGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(cfg.Gateway)
}

func NewPaymentMetrics() *metrics.PaymentMetrics {
	return metrics.NewPaymentMetrics(nil)
}

// NewEscalator publishes to Kafka when brokers are configured and only logs otherwise.
func NewEscalator(lc fx.Lifecycle, cfg config.Config) (shared.Escalator, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Warn("no kafka brokers configured, commit failures will only be logged")
		return escalation.NewLogEscalator(), nil
	}

	producer, err := escalation.NewProducer(cfg.Kafka.Brokers)
	if err != nil {
		return nil, err
	}
	publisher := escalation.NewKafkaPublisher(producer, cfg.Kafka.EscalationTopic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

type StagingParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Pool      *pgxpool.Pool
	Queries   *query.Queries
	Clock     clock.Clock
	Recorder  staging.SweepRecorder
}

func NewStagingStore(p StagingParams) (shared.StagingStore, error) {
	cfg := p.Config.Staging

	switch cfg.Backend {
	case StagingBackendRedis:
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{p.Config.Redis.Addr},
			Password: p.Config.Redis.Password,
			DB:       p.Config.Redis.DB,
		})
		p.Lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("failed to ping redis: %w", err)
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return staging.NewRedisStore(client, cfg.KeyPrefix), nil

	case StagingBackendPostgres:
		store := staging.NewPostgresStore(p.Queries, p.Pool, p.Clock)
		sweeper := staging.NewSweeper(store, p.Recorder, cfg.SweepInterval)
		p.Lifecycle.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				sweeper.Start()
				return nil
			},
			OnStop: sweeper.Stop,
		})
		return store, nil

	case StagingBackendMemory:
		slog.Warn("using in-process staging store, staged batches are lost on restart")
		return staging.NewMemoryStore(p.Clock), nil

	default:
		return nil, fmt.Errorf("unknown staging backend %q", cfg.Backend)
	}
}
