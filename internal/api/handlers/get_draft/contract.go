package get_draft

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
)

type DraftService interface {
	Load(ctx context.Context, userID string, spaceID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
