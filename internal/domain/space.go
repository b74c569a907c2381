package domain

// SpaceType категория арендуемого пространства
type SpaceType string

const (
	SpaceTypeCabin    SpaceType = "cabin"
	SpaceTypePavilion SpaceType = "pavilion" // quincho
	SpaceTypePool     SpaceType = "pool"
)

// IsValid returns true for a known space type
func (t SpaceType) IsValid() bool {
	switch t {
	case SpaceTypeCabin, SpaceTypePavilion, SpaceTypePool:
		return true
	}
	return false
}

// IsLodging returns true for spaces billed by occupancy (cabin, pavilion)
func (t SpaceType) IsLodging() bool {
	return t == SpaceTypeCabin || t == SpaceTypePavilion
}

// BillingMode режим тарификации, объявленный для пространства
type BillingMode string

const (
	BillingPerNight  BillingMode = "per_night"
	BillingPerDay    BillingMode = "per_day"
	BillingPerPerson BillingMode = "per_person"
)

// IsValid returns true for a known billing mode
func (m BillingMode) IsValid() bool {
	switch m {
	case BillingPerNight, BillingPerDay, BillingPerPerson:
		return true
	}
	return false
}

// SpaceTariffProfile тарифы и вместимость пространства, как их отдает каталог
// Все суммы в CLP (целые песо). nil означает, что тариф не задан.
type SpaceTariffProfile struct {
	SpaceID       int64
	Name          string
	Type          SpaceType
	BillingMode   BillingMode
	BaseCapacity  int
	ExtraCapacity *int // nil = без ограничения сверх базовой вместимости

	MemberBaseRate          *int64
	NonMemberBaseRate       *int64
	MemberExtraGuestRate    *int64
	NonMemberExtraGuestRate *int64
	MemberPoolRate          *int64
	NonMemberPoolRate       *int64
}

// TariffRates набор тарифов одной колонки (socio или externo)
type TariffRates struct {
	Member         bool
	BaseRate       *int64
	ExtraGuestRate *int64
	PoolRate       *int64
}

// Rates выбирает тарифы по категории использования.
// Всегда возвращается ровно одна колонка - никогда не смешиваются socio и externo.
func (p *SpaceTariffProfile) Rates(category UsageCategory) TariffRates {
	if category.IsMember() {
		return TariffRates{
			Member:         true,
			BaseRate:       p.MemberBaseRate,
			ExtraGuestRate: p.MemberExtraGuestRate,
			PoolRate:       p.MemberPoolRate,
		}
	}
	return TariffRates{
		Member:         false,
		BaseRate:       p.NonMemberBaseRate,
		ExtraGuestRate: p.NonMemberExtraGuestRate,
		PoolRate:       p.NonMemberPoolRate,
	}
}

// MaxCapacity returns base + extra capacity and whether a ceiling is defined
func (p *SpaceTariffProfile) MaxCapacity() (int, bool) {
	if p.ExtraCapacity == nil {
		return 0, false
	}
	return p.BaseCapacity + *p.ExtraCapacity, true
}
