package update_pricing_rules

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules/models"
)

type RulesService interface {
	Upsert(ctx context.Context, req *models.UpsertRulesRequest) (*models.RulesResponse, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
