package preview_price

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// RulesService интерфейс сервиса правил расчета
type RulesService interface {
	GetWithHierarchy(ctx context.Context, spaceID *int64, spaceType domain.SpaceType) (*domain.PricingRules, error)
}

// MetricsRecorder интерфейс для метрик расчетов
type MetricsRecorder interface {
	ObserveQuote(spaceType, outcome string, total int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
