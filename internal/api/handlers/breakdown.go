package handlers

import "github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"

// BreakdownResponse desglose для форм (суммы в CLP)
type BreakdownResponse struct {
	Days              int    `json:"dias"`
	Member            bool   `json:"tarifaSocio"`
	BillingMode       string `json:"modalidadCobro"`
	BaseAmount        int64  `json:"montoBase"`
	ExtraGuests       int    `json:"personasExtra"`
	ExtraGuestAmount  int64  `json:"montoPersonasExtra"`
	BillableGuests    int    `json:"invitadosCobrables"`
	GuestAmount       int64  `json:"montoInvitados"`
	PoolGuests        int    `json:"usuariosPiscina"`
	ChargedPoolGuests int    `json:"usuariosPiscinaCobrados"`
	PoolAmount        int64  `json:"montoPiscina"`
	Total             int64  `json:"totalClp"`
}

// FromBreakdown конвертирует domain модель в DTO
func FromBreakdown(b *domain.PriceBreakdown) *BreakdownResponse {
	if b == nil {
		return nil
	}
	return &BreakdownResponse{
		Days:              b.Days,
		Member:            b.Member,
		BillingMode:       string(b.BillingMode),
		BaseAmount:        b.BaseAmount,
		ExtraGuests:       b.ExtraGuests,
		ExtraGuestAmount:  b.ExtraGuestAmount,
		BillableGuests:    b.BillableGuests,
		GuestAmount:       b.GuestAmount,
		PoolGuests:        b.PoolGuests,
		ChargedPoolGuests: b.ChargedPoolGuests,
		PoolAmount:        b.PoolAmount,
		Total:             b.Total,
	}
}
