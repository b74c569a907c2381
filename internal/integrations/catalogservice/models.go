package catalogservice

import (
	"fmt"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// Space модель пространства из каталога backend (имена полей как в API backend)
type Space struct {
	ID                        int64  `json:"id" validate:"gte=0"`
	Nombre                    string `json:"nombre"`
	Tipo                      string `json:"tipo"`           // CABANA, QUINCHO, PISCINA
	ModalidadCobro            string `json:"modalidadCobro"` // POR_NOCHE, POR_DIA, POR_PERSONA
	Capacidad                 int    `json:"capacidad" validate:"gte=0,lte=10000"`
	CapacidadExtra            *int   `json:"capacidadExtra" validate:"omitempty,gte=0,lte=10000"`
	PrecioBaseSocio           *int64 `json:"precioBaseSocio" validate:"omitempty,gte=0,lte=100000000"`
	PrecioBaseExterno         *int64 `json:"precioBaseExterno" validate:"omitempty,gte=0,lte=100000000"`
	PrecioPersonaExtraSocio   *int64 `json:"precioPersonaExtraSocio" validate:"omitempty,gte=0,lte=100000000"`
	PrecioPersonaExtraExterno *int64 `json:"precioPersonaExtraExterno" validate:"omitempty,gte=0,lte=100000000"`
	PrecioPiscinaSocio        *int64 `json:"precioPiscinaSocio" validate:"omitempty,gte=0,lte=100000000"`
	PrecioPiscinaExterno      *int64 `json:"precioPiscinaExterno" validate:"omitempty,gte=0,lte=100000000"`
	Activo                    *bool  `json:"activo,omitempty"`
}

// ErrorResponse модель ошибки от backend
type ErrorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

var spaceTypes = map[string]domain.SpaceType{
	"CABANA":  domain.SpaceTypeCabin,
	"QUINCHO": domain.SpaceTypePavilion,
	"PISCINA": domain.SpaceTypePool,
}

var billingModes = map[string]domain.BillingMode{
	"POR_NOCHE":   domain.BillingPerNight,
	"POR_DIA":     domain.BillingPerDay,
	"POR_PERSONA": domain.BillingPerPerson,
}

// ToDomain конвертирует ответ каталога в тарифный профиль
func (s *Space) ToDomain() (*domain.SpaceTariffProfile, error) {
	spaceType, ok := spaceTypes[s.Tipo]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tipo %q", ErrInvalidResponse, s.Tipo)
	}

	billingMode, ok := billingModes[s.ModalidadCobro]
	if !ok {
		// Каталог не всегда отдает модальность: piscina по умолчанию по человеку, остальное по дням
		billingMode = domain.BillingPerDay
		if spaceType == domain.SpaceTypePool {
			billingMode = domain.BillingPerPerson
		}
	}

	return &domain.SpaceTariffProfile{
		SpaceID:                 s.ID,
		Name:                    s.Nombre,
		Type:                    spaceType,
		BillingMode:             billingMode,
		BaseCapacity:            s.Capacidad,
		ExtraCapacity:           s.CapacidadExtra,
		MemberBaseRate:          s.PrecioBaseSocio,
		NonMemberBaseRate:       s.PrecioBaseExterno,
		MemberExtraGuestRate:    s.PrecioPersonaExtraSocio,
		NonMemberExtraGuestRate: s.PrecioPersonaExtraExterno,
		MemberPoolRate:          s.PrecioPiscinaSocio,
		NonMemberPoolRate:       s.PrecioPiscinaExterno,
	}, nil
}
