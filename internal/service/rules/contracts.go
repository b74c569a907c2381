package rules

import (
	"context"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// RulesRepository интерфейс репозитория правил расчета
type RulesRepository interface {
	Create(ctx context.Context, rules *domain.PricingRules) (*domain.PricingRules, error)
	GetByID(ctx context.Context, id int64) (*domain.PricingRules, error)
	GetByKey(ctx context.Context, spaceType *domain.SpaceType, spaceID *int64) (*domain.PricingRules, error)
	GetRulesWithHierarchy(ctx context.Context, spaceID *int64, spaceType domain.SpaceType) (*domain.PricingRules, error)
	GetAll(ctx context.Context) ([]*domain.PricingRules, error)
	Update(ctx context.Context, id int64, rules *domain.PricingRules) (*domain.PricingRules, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogClient интерфейс клиента каталога пространств
type CatalogClient interface {
	GetSpace(ctx context.Context, spaceID int64) (*domain.SpaceTariffProfile, error)
}

// Defaults правила по умолчанию, когда в БД ничего не настроено
type Defaults interface {
	Rules(spaceType domain.SpaceType) domain.PricingRules
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
