package preview_price

import (
	"fmt"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Profile == nil {
		return fmt.Errorf("%w: tariff profile is required", ErrInvalidInput)
	}

	if !req.Profile.Type.IsValid() {
		return fmt.Errorf("%w: unknown space type %q", ErrInvalidInput, req.Profile.Type)
	}

	if req.Profile.SpaceID < 0 {
		return fmt.Errorf("%w: spaceID must not be negative", ErrInvalidInput)
	}

	if req.Draft == nil {
		return fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}

	if len(req.Draft.Guests) > domain.MaxGuestsPerReservation {
		return fmt.Errorf("%w: at most %d guests", ErrInvalidInput, domain.MaxGuestsPerReservation)
	}

	return nil
}
