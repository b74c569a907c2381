package draft

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/ptr"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/types"
)

func openKV(t *testing.T, ttl time.Duration) *KVStore {
	t.Helper()
	store, err := Open(context.Background(), "kvdb://"+filepath.Join(t.TempDir(), "drafts.db"), "", ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	kv, ok := store.(*KVStore)
	require.True(t, ok)
	return kv
}

func sampleDraft() *domain.ReservationDraft {
	return &domain.ReservationDraft{
		ID:            uuid.New(),
		SpaceID:       7,
		StartDate:     types.MustParseDate("2026-01-10"),
		EndDate:       types.MustParseDate("2026-01-12"),
		UsageCategory: domain.UsageDirectCharge,
		Party:         domain.PartyComposition{Adults: 2, Minors: 1},
		Guests: []domain.Guest{
			{Name: "Ana Pérez", Rut: "11.111.111-1", Age: 34, UsesPool: true},
			{Name: "Tomás", Age: 8},
		},
		ResponsibleName: ptr.Ptr("Luis Soto"),
		UpdatedAt:       time.Now().UTC().Truncate(time.Second),
	}
}

func TestKVStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := openKV(t, time.Hour)

	d := sampleDraft()
	require.NoError(t, store.Save(ctx, "42", d))

	got, err := store.Load(ctx, "42", 7)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, "2026-01-10", got.StartDate.String())
	assert.Equal(t, "2026-01-12", got.EndDate.String())
	assert.Equal(t, domain.UsageDirectCharge, got.UsageCategory)
	assert.Equal(t, d.Party, got.Party)
	assert.Equal(t, d.Guests, got.Guests)
	assert.Equal(t, "Luis Soto", *got.ResponsibleName)
	assert.True(t, d.UpdatedAt.Equal(got.UpdatedAt))

	// другой владелец не видит черновик
	_, err = store.Load(ctx, "43", 7)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	require.NoError(t, store.Delete(ctx, "42", 7))
	_, err = store.Load(ctx, "42", 7)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "42", 7), ErrDraftNotFound)
}

func TestKVStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := openKV(t, 0)

	d := sampleDraft()
	require.NoError(t, store.Save(ctx, "42", d))

	d.Party.Adults = 5
	d.Guests = nil
	require.NoError(t, store.Save(ctx, "42", d))

	got, err := store.Load(ctx, "42", 7)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Party.Adults)
	assert.Empty(t, got.Guests)
}

func TestKVStore_ExpiredDraft(t *testing.T) {
	ctx := context.Background()
	store := openKV(t, time.Hour)

	d := sampleDraft()
	require.NoError(t, store.Save(ctx, "42", d))

	store.now = func() time.Time { return d.UpdatedAt.Add(2 * time.Hour) }

	_, err := store.Load(ctx, "42", 7)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	// просроченный черновик удален
	assert.ErrorIs(t, store.Delete(ctx, "42", 7), ErrDraftNotFound)
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "mysql://localhost/drafts", "", time.Hour)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestDecode_Broken(t *testing.T) {
	_, err := decode([]byte("{not json"))
	assert.ErrorIs(t, err, ErrDecode)
}
