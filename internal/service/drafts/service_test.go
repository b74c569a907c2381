package drafts

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	draftStore "github.com/manuelContrerasDev/enap-reservas-sub001/internal/infra/storage/draft"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := draftStore.Open(context.Background(), "kvdb://"+filepath.Join(t.TempDir(), "drafts.db"), "", time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, logger.Nop())
}

func payload() models.DraftPayload {
	return models.DraftPayload{
		StartDate:     "2026-02-01",
		EndDate:       "2026-02-03",
		UsageCategory: models.UsoTerceros,
		Adults:        3,
		Guests: []models.GuestPayload{
			{Name: "Camila", Age: 20, UsesPool: true},
		},
	}
}

func TestSave_AssignsAndKeepsID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Save(ctx, &models.SaveDraftRequest{UserID: "u1", SpaceID: 4, Draft: payload()})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID.String())
	assert.Equal(t, int64(4), first.SpaceID)
	assert.Equal(t, "TERCEROS", first.UsageCategory)

	next := payload()
	next.Adults = 5
	second, err := svc.Save(ctx, &models.SaveDraftRequest{UserID: "u1", SpaceID: 4, Draft: next})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	loaded, err := svc.Load(ctx, "u1", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Adults)
	assert.Equal(t, "2026-02-01", loaded.StartDate)
	require.Len(t, loaded.Guests, 1)
	assert.True(t, loaded.Guests[0].UsesPool)
}

func TestSave_PartialDraft(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.Save(ctx, &models.SaveDraftRequest{UserID: "u1", SpaceID: 1, Draft: models.DraftPayload{Adults: 2}})
	require.NoError(t, err)
	assert.Empty(t, resp.StartDate)
	assert.Empty(t, resp.UsageCategory)
}

func TestSave_InvalidDate(t *testing.T) {
	svc := newTestService(t)

	p := payload()
	p.EndDate = "2026-02-30"
	_, err := svc.Save(context.Background(), &models.SaveDraftRequest{UserID: "u1", SpaceID: 1, Draft: p})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoadDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Load(ctx, "u1", 1)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "u1", 1), ErrDraftNotFound)

	_, err = svc.Save(ctx, &models.SaveDraftRequest{UserID: "u1", SpaceID: 1, Draft: payload()})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "u1", 1))

	_, err = svc.Load(ctx, "u1", 1)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, *domain.ReservationDraft) error {
	return errors.New("disk full")
}

func (failingStore) Load(context.Context, string, int64) (*domain.ReservationDraft, error) {
	return nil, draftStore.ErrDraftNotFound
}

func (failingStore) Delete(context.Context, string, int64) error {
	return errors.New("disk full")
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewService(failingStore{}, logger.Nop())

	_, err := svc.Save(ctx, &models.SaveDraftRequest{UserID: "u1", SpaceID: 1, Draft: payload()})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, svc.Delete(ctx, "u1", 1), ErrInternal)
}

func TestUsageMapping(t *testing.T) {
	for code, usage := range map[string]domain.UsageCategory{
		"USO_PERSONAL":  domain.UsagePersonal,
		"CARGO_DIRECTO": domain.UsageDirectCharge,
		"TERCEROS":      domain.UsageThirdParty,
	} {
		got, err := models.ToDomainUsage(code)
		require.NoError(t, err)
		assert.Equal(t, usage, got)
		assert.Equal(t, code, models.FromDomainUsage(usage))
	}

	_, err := models.ToDomainUsage("SOCIO")
	assert.Error(t, err)
}
