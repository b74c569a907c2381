package estimate_price

import (
	"fmt"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Бизнес-правила (даты, вместимость) проверяет калькулятор
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.Draft == nil {
		return fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}

	if req.Draft.SpaceID != 0 && req.Draft.SpaceID != req.SpaceID {
		return fmt.Errorf("%w: draft belongs to space %d", ErrInvalidInput, req.Draft.SpaceID)
	}

	if len(req.Draft.Guests) > domain.MaxGuestsPerReservation {
		return fmt.Errorf("%w: at most %d guests", ErrInvalidInput, domain.MaxGuestsPerReservation)
	}

	return nil
}

// rulesLevel уровень правил; ID = 0 - правила из конфигурации сервиса
func rulesLevel(rules *domain.PricingRules) string {
	if rules.ID == 0 {
		return "default"
	}
	return rules.Level()
}
