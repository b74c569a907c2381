package estimate_price

import (
	"context"

	estimatePrice "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/estimate_price"
)

type EstimatePriceUseCase interface {
	Execute(ctx context.Context, req *estimatePrice.Request) (*estimatePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
