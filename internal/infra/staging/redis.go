package staging

import (
	"context"
	"errors"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisStore relies on SET NX PX for puts and GETDEL for takes, both single commands.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) Put(ctx context.Context, token string, batch *payment.StagedBatch, ttl time.Duration) error {
	raw, err := encode(token, batch, ttl)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, s.key(token), raw, ttl).Result()
	if err != nil {
		return errs.Wrap(err, "redis SET NX")
	}
	if !ok {
		return shared.ErrStagingKeyExists
	}
	return nil
}

func (s *RedisStore) TakeIfPresent(ctx context.Context, token string) (*payment.StagedBatch, bool, error) {
	if token == "" {
		return nil, false, nil
	}

	raw, err := s.client.GetDel(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "redis GETDEL")
	}

	batch, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return batch, true, nil
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}
