package preview_price

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/pricing"
)

// Request модель запроса на предварительный расчет с тарифами из формы администратора
type Request struct {
	UserID  string
	Profile *domain.SpaceTariffProfile // SpaceID = 0, если пространство еще не создано
	Draft   *domain.ReservationDraft
}

// Response модель ответа
type Response struct {
	Priced     bool
	Reason     pricing.Reason
	Message    string
	Detail     string
	RulesLevel string
	Breakdown  *domain.PriceBreakdown
}
