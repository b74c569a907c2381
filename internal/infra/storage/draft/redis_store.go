package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

const redisKeyPrefix = "enap:draft:"

// RedisStore черновики в Redis, TTL выставляется на ключ
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, ownerID string, d *domain.ReservationDraft) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "RedisStore.Save")
	defer span.End()

	span.SetAttributes(attribute.Int64("space_id", d.SpaceID))

	data, err := encode(d)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := s.client.Set(ctx, redisKeyPrefix+key(ownerID, d.SpaceID), data, s.ttl).Err(); err != nil {
		err = fmt.Errorf("%w: set draft: %v", ErrStore, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, ownerID string, spaceID int64) (*domain.ReservationDraft, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "RedisStore.Load")
	defer span.End()

	span.SetAttributes(attribute.Int64("space_id", spaceID))

	data, err := s.client.Get(ctx, redisKeyPrefix+key(ownerID, spaceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		err = fmt.Errorf("%w: get draft: %v", ErrStore, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return decode(data)
}

func (s *RedisStore) Delete(ctx context.Context, ownerID string, spaceID int64) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "RedisStore.Delete")
	defer span.End()

	n, err := s.client.Del(ctx, redisKeyPrefix+key(ownerID, spaceID)).Result()
	if err != nil {
		err = fmt.Errorf("%w: delete draft: %v", ErrStore, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if n == 0 {
		return ErrDraftNotFound
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
