package estimate_price

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/pricing"
)

// Status результат расчета
type Status string

const (
	StatusPriced  Status = "priced"
	StatusInvalid Status = "invalid"
)

// Request модель запроса на расчет стоимости
type Request struct {
	UserID  string                   // пусто для анонимного каталога
	SpaceID int64                    // ID пространства в каталоге
	Draft   *domain.ReservationDraft // черновик из формы
}

// Response модель ответа с расчетом
// Breakdown = nil, если Status = invalid
type Response struct {
	Status  Status
	Reason  pricing.Reason
	Message string // текст для пользователя
	Detail  string // технические подробности

	SpaceID    int64
	SpaceName  string
	SpaceType  domain.SpaceType
	RulesLevel string
	Rules      domain.PricingRules

	Breakdown *domain.PriceBreakdown
}
