package domain

import "time"

// DayCountConvention правило подсчета дней по диапазону дат
type DayCountConvention string

const (
	// DayCountInclusive end - start + 1 (01.01 -> 03.01 = 3 дня)
	DayCountInclusive DayCountConvention = "inclusive"
	// DayCountExclusive end - start (01.01 -> 03.01 = 2 дня)
	DayCountExclusive DayCountConvention = "exclusive"
)

func (c DayCountConvention) IsValid() bool {
	return c == DayCountInclusive || c == DayCountExclusive
}

// PoolStrategy способ тарификации пространства типа pool
type PoolStrategy string

const (
	// PoolPerHead без базовой цены, каждый человек по тарифу piscina
	PoolPerHead PoolStrategy = "per_head"
	// PoolFlatBase базовая цена покрывает BaseCapacity человек, остальные по тарифу piscina
	PoolFlatBase PoolStrategy = "flat_base"
)

func (s PoolStrategy) IsValid() bool {
	return s == PoolPerHead || s == PoolFlatBase
}

// PricingRules параметры расчета, которые раньше расходились между формами.
// Supports hierarchical configuration:
// 1. Specific space (space_id)
// 2. All spaces of a type (space_type)
// 3. Global (both NULL)
type PricingRules struct {
	ID                   int64
	SpaceType            *SpaceType
	SpaceID              *int64
	MinimumStayDays      int
	DayCount             DayCountConvention
	PoolStrategy         PoolStrategy
	MemberFreePoolGuests int
	GuestMinBillableAge  int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsGlobal returns true if the rules apply to every space
func (r *PricingRules) IsGlobal() bool {
	return r.SpaceType == nil && r.SpaceID == nil
}

// IsSpaceTypeSpecific returns true if the rules apply to all spaces of one type
func (r *PricingRules) IsSpaceTypeSpecific() bool {
	return r.SpaceType != nil && r.SpaceID == nil
}

// IsSpaceSpecific returns true if the rules apply to a single space
func (r *PricingRules) IsSpaceSpecific() bool {
	return r.SpaceID != nil
}

// Level строковое представление уровня для логов и ответов API
func (r *PricingRules) Level() string {
	switch {
	case r.IsSpaceSpecific():
		return "space"
	case r.IsSpaceTypeSpecific():
		return "space_type"
	default:
		return "global"
	}
}

// DefaultRules правила по умолчанию для типа пространства
func DefaultRules(spaceType SpaceType) PricingRules {
	minStay := DefaultMinimumStayDays
	if spaceType == SpaceTypeCabin {
		minStay = DefaultCabinMinimumStayDays
	}
	return PricingRules{
		MinimumStayDays:      minStay,
		DayCount:             DefaultDayCount,
		PoolStrategy:         DefaultPoolStrategy,
		MemberFreePoolGuests: DefaultMemberFreePoolGuests,
		GuestMinBillableAge:  DefaultGuestMinBillableAge,
	}
}
