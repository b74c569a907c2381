package pricing

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// Calculate считает предварительную стоимость резерва.
//
// Функция чистая: без I/O и состояния, при одинаковых входных данных результат одинаковый.
// Невозможность расчета возвращается как *InvalidError (см. ReasonOf), нулевой
// breakdown никогда не используется как признак ошибки.
// Backend пересчитывает сумму сам, результат носит справочный характер.
func Calculate(
	profile *domain.SpaceTariffProfile,
	draft *domain.ReservationDraft,
	rules domain.PricingRules,
) (*domain.PriceBreakdown, error) {
	if err := validateInput(profile, draft, rules); err != nil {
		return nil, err
	}

	if draft.EndDate.Before(draft.StartDate) {
		return nil, invalid(ErrInvalidDateRange, "end date %s is before start date %s", draft.EndDate, draft.StartDate)
	}

	days := CountDays(draft.StartDate, draft.EndDate, rules.DayCount)
	if days < 1 {
		return nil, invalid(ErrInvalidDateRange, "%s -> %s gives %d days (%s)", draft.StartDate, draft.EndDate, days, rules.DayCount)
	}

	if days > domain.MaxStayDays {
		return nil, invalid(ErrInvalidDateRange, "%d days, at most %d per reservation", days, domain.MaxStayDays)
	}

	if days < rules.MinimumStayDays {
		return nil, invalid(ErrBelowMinimumStay, "%d days, minimum for %s is %d", days, profile.Type, rules.MinimumStayDays)
	}

	rates := profile.Rates(draft.UsageCategory)

	breakdown := &domain.PriceBreakdown{
		Days:        days,
		Member:      rates.Member,
		BillingMode: profile.BillingMode,
	}

	var err error
	if profile.Type == domain.SpaceTypePool {
		err = pricePool(breakdown, profile, draft, rules, rates)
	} else {
		err = priceLodging(breakdown, profile, draft, rules, rates)
	}
	if err != nil {
		return nil, err
	}

	total, err := addAmounts(breakdown.BaseAmount, breakdown.ExtraGuestAmount, breakdown.GuestAmount, breakdown.PoolAmount)
	if err != nil {
		return nil, err
	}
	breakdown.Total = total
	return breakdown, nil
}

// priceLodging cabaña и quincho: базовая цена за день, переполнение базовой вместимости за день,
// invitados фиксированной платой за весь срок, доплата за piscina с бесплатной квотой для socios
func priceLodging(
	b *domain.PriceBreakdown,
	profile *domain.SpaceTariffProfile,
	draft *domain.ReservationDraft,
	rules domain.PricingRules,
	rates domain.TariffRates,
) error {
	attendees := draft.TotalAttendees()
	if attendees == 0 {
		return invalid(ErrEmptyParty, "no adults or minors in the party")
	}

	// invitados занимают места, но переполнение за день считается только по группе
	if maxCapacity, ok := profile.MaxCapacity(); ok {
		occupancy := attendees + len(draft.Guests)
		if occupancy > maxCapacity {
			return invalid(ErrCapacityExceeded, "%d people, space allows %d", occupancy, maxCapacity)
		}
	}

	baseRate, err := requireRate(rates.BaseRate, "BaseRate", rates.Member)
	if err != nil {
		return err
	}
	days := int64(b.Days)
	if b.BaseAmount, err = mulAmounts(baseRate, days); err != nil {
		return err
	}

	b.ExtraGuests = max(0, attendees-profile.BaseCapacity)
	b.BillableGuests = countBillableGuests(draft.Guests, rules.GuestMinBillableAge)

	if b.ExtraGuests > 0 || b.BillableGuests > 0 {
		guestRate, err := requireRate(rates.ExtraGuestRate, "ExtraGuestRate", rates.Member)
		if err != nil {
			return err
		}
		// Два разных понятия: переполнение считается за день, invitados - за весь срок
		if b.ExtraGuestAmount, err = mulAmounts(guestRate, int64(b.ExtraGuests), days); err != nil {
			return err
		}
		if b.GuestAmount, err = mulAmounts(guestRate, int64(b.BillableGuests)); err != nil {
			return err
		}
	}

	b.PoolGuests = draft.PoolHeadcount()
	b.ChargedPoolGuests = b.PoolGuests
	if rates.Member {
		b.ChargedPoolGuests = max(0, b.PoolGuests-rules.MemberFreePoolGuests)
	}

	if b.ChargedPoolGuests > 0 {
		poolRate, err := requireRate(rates.PoolRate, "PoolRate", rates.Member)
		if err != nil {
			return err
		}
		if b.PoolAmount, err = mulAmounts(poolRate, int64(b.ChargedPoolGuests), days); err != nil {
			return err
		}
	}

	return nil
}

// pricePool piscina как отдельное пространство, стратегия задается правилами
func pricePool(
	b *domain.PriceBreakdown,
	profile *domain.SpaceTariffProfile,
	draft *domain.ReservationDraft,
	rules domain.PricingRules,
	rates domain.TariffRates,
) error {
	heads := draft.PoolHeadcount()
	// Piscina как пространство: без списка invitados и без cantidadPiscina
	// в piscina идут все участники группы
	if heads == 0 && len(draft.Guests) == 0 {
		heads = draft.TotalAttendees()
	}
	if heads == 0 {
		return invalid(ErrEmptyParty, "no pool users")
	}

	if maxCapacity, ok := profile.MaxCapacity(); ok && heads > maxCapacity {
		return invalid(ErrCapacityExceeded, "%d pool users, space allows %d", heads, maxCapacity)
	}

	b.PoolGuests = heads
	days := int64(b.Days)

	switch rules.PoolStrategy {
	case domain.PoolFlatBase:
		baseRate, err := requireRate(rates.BaseRate, "BaseRate", rates.Member)
		if err != nil {
			return err
		}
		if b.BaseAmount, err = mulAmounts(baseRate, days); err != nil {
			return err
		}
		b.ChargedPoolGuests = max(0, heads-profile.BaseCapacity)

	default:
		b.ChargedPoolGuests = heads
	}

	if b.ChargedPoolGuests > 0 {
		poolRate, err := requireRate(rates.PoolRate, "PoolRate", rates.Member)
		if err != nil {
			return err
		}
		if b.PoolAmount, err = mulAmounts(poolRate, int64(b.ChargedPoolGuests), days); err != nil {
			return err
		}
	}

	return nil
}

func countBillableGuests(guests []domain.Guest, minAge int) int {
	count := 0
	for _, g := range guests {
		if g.Age >= minAge {
			count++
		}
	}
	return count
}

func requireRate(rate *int64, field string, member bool) (int64, error) {
	if rate != nil {
		return *rate, nil
	}
	prefix := "NonMember"
	if member {
		prefix = "Member"
	}
	return 0, invalid(ErrMissingTariffField, "%s%s is not set", prefix, field)
}
