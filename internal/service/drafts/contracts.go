package drafts

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Save(ctx context.Context, ownerID string, draft *domain.ReservationDraft) error
	Load(ctx context.Context, ownerID string, spaceID int64) (*domain.ReservationDraft, error)
	Delete(ctx context.Context, ownerID string, spaceID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
