package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/types"
)

// Значения usoReserva в payload backend
const (
	UsoPersonal     = "USO_PERSONAL"
	UsoCargoDirecto = "CARGO_DIRECTO"
	UsoTerceros     = "TERCEROS"
)

var usageByCode = map[string]domain.UsageCategory{
	UsoPersonal:     domain.UsagePersonal,
	UsoCargoDirecto: domain.UsageDirectCharge,
	UsoTerceros:     domain.UsageThirdParty,
}

// ToDomainUsage конвертирует usoReserva в domain.UsageCategory
func ToDomainUsage(code string) (domain.UsageCategory, error) {
	if code == "" {
		return "", nil
	}
	usage, ok := usageByCode[code]
	if !ok {
		return "", fmt.Errorf("unknown usoReserva %q", code)
	}
	return usage, nil
}

// FromDomainUsage конвертирует domain.UsageCategory в usoReserva
func FromDomainUsage(usage domain.UsageCategory) string {
	for code, u := range usageByCode {
		if u == usage {
			return code
		}
	}
	return ""
}

// DraftPayload черновик в формате запроса на создание резерва.
// Все поля необязательны: форма сохраняет незаполненный черновик.
type DraftPayload struct {
	StartDate       string         `json:"fechaInicio" validate:"omitempty,datetime=2006-01-02"`
	EndDate         string         `json:"fechaFin" validate:"omitempty,datetime=2006-01-02"`
	UsageCategory   string         `json:"usoReserva" validate:"omitempty,oneof=USO_PERSONAL CARGO_DIRECTO TERCEROS"`
	Adults          int            `json:"cantidadAdultos" validate:"gte=0,lte=1000"`
	Minors          int            `json:"cantidadNinos" validate:"gte=0,lte=1000"`
	PoolUsers       int            `json:"cantidadPiscina" validate:"gte=0,lte=1000"`
	Guests          []GuestPayload `json:"invitados,omitempty" validate:"max=200,dive"`
	ResponsibleName *string        `json:"nombreResponsable,omitempty" validate:"omitempty,max=120"`
}

// GuestPayload invitado
type GuestPayload struct {
	Name     string `json:"nombre" validate:"required,max=120"`
	Rut      string `json:"rut,omitempty" validate:"omitempty,max=20"`
	Age      int    `json:"edad" validate:"gte=0,lte=120"`
	UsesPool bool   `json:"usaPiscina"`
}

// ToDomainDraft конвертирует payload в domain модель
func (p *DraftPayload) ToDomainDraft(spaceID int64) (*domain.ReservationDraft, error) {
	start, err := parseOptionalDate(p.StartDate)
	if err != nil {
		return nil, fmt.Errorf("fechaInicio: %w", err)
	}
	end, err := parseOptionalDate(p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("fechaFin: %w", err)
	}
	usage, err := ToDomainUsage(p.UsageCategory)
	if err != nil {
		return nil, err
	}

	d := &domain.ReservationDraft{
		SpaceID:       spaceID,
		StartDate:     start,
		EndDate:       end,
		UsageCategory: usage,
		Party: domain.PartyComposition{
			Adults:    p.Adults,
			Minors:    p.Minors,
			PoolUsers: p.PoolUsers,
		},
		ResponsibleName: p.ResponsibleName,
	}
	for _, g := range p.Guests {
		d.Guests = append(d.Guests, domain.Guest{
			Name:     g.Name,
			Rut:      g.Rut,
			Age:      g.Age,
			UsesPool: g.UsesPool,
		})
	}
	return d, nil
}

// FromDomainDraft конвертирует domain модель в payload
func FromDomainDraft(d *domain.ReservationDraft) DraftPayload {
	p := DraftPayload{
		UsageCategory:   FromDomainUsage(d.UsageCategory),
		Adults:          d.Party.Adults,
		Minors:          d.Party.Minors,
		PoolUsers:       d.Party.PoolUsers,
		ResponsibleName: d.ResponsibleName,
	}
	if !d.StartDate.IsZero() {
		p.StartDate = d.StartDate.String()
	}
	if !d.EndDate.IsZero() {
		p.EndDate = d.EndDate.String()
	}
	for _, g := range d.Guests {
		p.Guests = append(p.Guests, GuestPayload{
			Name:     g.Name,
			Rut:      g.Rut,
			Age:      g.Age,
			UsesPool: g.UsesPool,
		})
	}
	return p
}

// Request модели

// SaveDraftRequest запрос на сохранение черновика
type SaveDraftRequest struct {
	UserID  string
	SpaceID int64
	Draft   DraftPayload
}

// Response модели

// DraftResponse ответ с черновиком
type DraftResponse struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   int64     `json:"espacioId"`
	UpdatedAt time.Time `json:"actualizadoEn"`
	DraftPayload
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(d *domain.ReservationDraft) *DraftResponse {
	if d == nil {
		return nil
	}
	return &DraftResponse{
		ID:           d.ID,
		SpaceID:      d.SpaceID,
		UpdatedAt:    d.UpdatedAt,
		DraftPayload: FromDomainDraft(d),
	}
}

func parseOptionalDate(s string) (types.Date, error) {
	if s == "" {
		return types.Date{}, nil
	}
	return types.ParseDate(s)
}
