package preview_price

import (
	"context"

	previewPrice "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/preview_price"
)

type PreviewPriceUseCase interface {
	Execute(ctx context.Context, req *previewPrice.Request) (*previewPrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
