package draft

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

const bucketDrafts = "reservation_drafts"

// KVStore черновики в локальном файле bbolt.
// TTL проверяется при чтении: просроченный черновик удаляется и считается отсутствующим.
type KVStore struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

// NewKVStore создает bucket, если его нет
func NewKVStore(db *bolt.DB, ttl time.Duration) (*KVStore, error) {
	return &KVStore{db: db, ttl: ttl, now: time.Now}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketDrafts))
		return err
	})
}

func (s *KVStore) Save(ctx context.Context, ownerID string, d *domain.ReservationDraft) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "KVStore.Save")
	defer span.End()

	span.SetAttributes(attribute.Int64("space_id", d.SpaceID))

	data, err := encode(d)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketDrafts))
		if err := bucket.Put([]byte(key(ownerID, d.SpaceID)), data); err != nil {
			err = fmt.Errorf("%w: put draft: %v", ErrStore, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return nil
	})
}

func (s *KVStore) Load(ctx context.Context, ownerID string, spaceID int64) (*domain.ReservationDraft, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "KVStore.Load")
	defer span.End()

	span.SetAttributes(attribute.Int64("space_id", spaceID))

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketDrafts))
		v := bucket.Get([]byte(key(ownerID, spaceID)))
		if v == nil {
			return ErrDraftNotFound
		}
		// значение валидно только внутри транзакции
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	d, err := decode(data)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if s.ttl > 0 && s.now().Sub(d.UpdatedAt) > s.ttl {
		span.AddEvent("draft expired")
		if err := s.Delete(ctx, ownerID, spaceID); err != nil && err != ErrDraftNotFound {
			return nil, err
		}
		return nil, ErrDraftNotFound
	}

	return d, nil
}

func (s *KVStore) Delete(ctx context.Context, ownerID string, spaceID int64) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "KVStore.Delete")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketDrafts))
		k := []byte(key(ownerID, spaceID))
		if bucket.Get(k) == nil {
			return ErrDraftNotFound
		}
		if err := bucket.Delete(k); err != nil {
			err = fmt.Errorf("%w: delete draft: %v", ErrStore, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return nil
	})
}

func (s *KVStore) Close() error {
	return s.db.Close()
}
