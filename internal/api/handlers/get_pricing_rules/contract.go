package get_pricing_rules

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules/models"
)

type RulesService interface {
	GetEffective(ctx context.Context, spaceID int64) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
