package save_draft

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
)

type DraftService interface {
	Save(ctx context.Context, req *models.SaveDraftRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
