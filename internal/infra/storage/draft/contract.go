package draft

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// Store хранилище черновиков резерва. Ключ - пара (владелец, пространство):
// у пользователя не больше одного черновика на пространство.
type Store interface {
	Save(ctx context.Context, ownerID string, draft *domain.ReservationDraft) error
	Load(ctx context.Context, ownerID string, spaceID int64) (*domain.ReservationDraft, error)
	Delete(ctx context.Context, ownerID string, spaceID int64) error
	Close() error
}
