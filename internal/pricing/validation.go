package pricing

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// validateInput проверяет структуру входных данных. Бизнес-правила (даты, вместимость)
// проверяются в Calculate, чтобы вернуть более точную причину.
func validateInput(profile *domain.SpaceTariffProfile, draft *domain.ReservationDraft, rules domain.PricingRules) error {
	if profile == nil {
		return invalid(ErrInvalidInput, "tariff profile is required")
	}
	if draft == nil {
		return invalid(ErrInvalidInput, "reservation draft is required")
	}

	if !profile.Type.IsValid() {
		return invalid(ErrInvalidInput, "unknown space type %q", profile.Type)
	}
	if profile.BaseCapacity < 0 || profile.BaseCapacity > domain.MaxSpaceCapacity {
		return invalid(ErrInvalidInput, "base capacity must be between 0 and %d", domain.MaxSpaceCapacity)
	}
	if profile.ExtraCapacity != nil && (*profile.ExtraCapacity < 0 || *profile.ExtraCapacity > domain.MaxSpaceCapacity) {
		return invalid(ErrInvalidInput, "extra capacity must be between 0 and %d", domain.MaxSpaceCapacity)
	}
	rates := []struct {
		name string
		rate *int64
	}{
		{"MemberBaseRate", profile.MemberBaseRate},
		{"NonMemberBaseRate", profile.NonMemberBaseRate},
		{"MemberExtraGuestRate", profile.MemberExtraGuestRate},
		{"NonMemberExtraGuestRate", profile.NonMemberExtraGuestRate},
		{"MemberPoolRate", profile.MemberPoolRate},
		{"NonMemberPoolRate", profile.NonMemberPoolRate},
	}
	for _, r := range rates {
		if r.rate != nil && (*r.rate < 0 || *r.rate > domain.MaxRateCLP) {
			return invalid(ErrInvalidInput, "%s must be between 0 and %d", r.name, domain.MaxRateCLP)
		}
	}

	if !draft.UsageCategory.IsValid() {
		return invalid(ErrInvalidInput, "unknown usage category %q", draft.UsageCategory)
	}
	if draft.StartDate.IsZero() || draft.EndDate.IsZero() {
		return invalid(ErrInvalidDateRange, "start and end dates are required")
	}
	counts := []struct {
		name  string
		value int
	}{
		{"adults", draft.Party.Adults},
		{"minors", draft.Party.Minors},
		{"pool users", draft.Party.PoolUsers},
	}
	for _, c := range counts {
		if c.value < 0 || c.value > domain.MaxPartySize {
			return invalid(ErrInvalidInput, "%s must be between 0 and %d", c.name, domain.MaxPartySize)
		}
	}
	if len(draft.Guests) > domain.MaxGuestsPerReservation {
		return invalid(ErrInvalidInput, "at most %d guests per reservation", domain.MaxGuestsPerReservation)
	}
	for i, g := range draft.Guests {
		if g.Age < 0 {
			return invalid(ErrInvalidInput, "guest #%d has negative age", i+1)
		}
	}

	if !rules.DayCount.IsValid() {
		return invalid(ErrInvalidInput, "unknown day count convention %q", rules.DayCount)
	}
	if !rules.PoolStrategy.IsValid() {
		return invalid(ErrInvalidInput, "unknown pool strategy %q", rules.PoolStrategy)
	}
	if rules.MemberFreePoolGuests < 0 || rules.GuestMinBillableAge < 0 || rules.MinimumStayDays < 0 {
		return invalid(ErrInvalidInput, "pricing rules must not be negative")
	}

	return nil
}
