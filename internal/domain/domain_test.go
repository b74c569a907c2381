package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/ptr"
)

func TestSpaceTariffProfile_Rates(t *testing.T) {
	p := &SpaceTariffProfile{
		MemberBaseRate:          ptr.Ptr(int64(50000)),
		NonMemberBaseRate:       ptr.Ptr(int64(80000)),
		MemberExtraGuestRate:    ptr.Ptr(int64(5000)),
		NonMemberExtraGuestRate: ptr.Ptr(int64(8000)),
		MemberPoolRate:          ptr.Ptr(int64(2500)),
		NonMemberPoolRate:       ptr.Ptr(int64(4500)),
	}

	for _, category := range []UsageCategory{UsagePersonal, UsageDirectCharge} {
		rates := p.Rates(category)
		assert.True(t, rates.Member)
		assert.Equal(t, int64(50000), *rates.BaseRate)
		assert.Equal(t, int64(5000), *rates.ExtraGuestRate)
		assert.Equal(t, int64(2500), *rates.PoolRate)
	}

	rates := p.Rates(UsageThirdParty)
	assert.False(t, rates.Member)
	assert.Equal(t, int64(80000), *rates.BaseRate)
	assert.Equal(t, int64(8000), *rates.ExtraGuestRate)
	assert.Equal(t, int64(4500), *rates.PoolRate)
}

func TestSpaceTariffProfile_MaxCapacity(t *testing.T) {
	p := &SpaceTariffProfile{BaseCapacity: 6}
	_, ok := p.MaxCapacity()
	assert.False(t, ok)

	p.ExtraCapacity = ptr.Ptr(4)
	max, ok := p.MaxCapacity()
	assert.True(t, ok)
	assert.Equal(t, 10, max)
}

func TestReservationDraft_PoolHeadcount(t *testing.T) {
	d := &ReservationDraft{Party: PartyComposition{Adults: 4, PoolUsers: 3}}
	assert.Equal(t, 3, d.PoolHeadcount())

	d.Guests = []Guest{
		{Name: "Ana", Age: 30, UsesPool: true},
		{Name: "Luis", Age: 8, UsesPool: false},
	}
	assert.Equal(t, 1, d.PoolHeadcount(), "guest list overrides the entered pool count")
	assert.Equal(t, 4, d.TotalAttendees())
}

func TestDefaultRules(t *testing.T) {
	cabin := DefaultRules(SpaceTypeCabin)
	assert.Equal(t, 3, cabin.MinimumStayDays)
	assert.Equal(t, DayCountInclusive, cabin.DayCount)
	assert.Equal(t, 5, cabin.MemberFreePoolGuests)
	assert.Equal(t, 13, cabin.GuestMinBillableAge)
	assert.True(t, cabin.IsGlobal())

	assert.Equal(t, 1, DefaultRules(SpaceTypePavilion).MinimumStayDays)
	assert.Equal(t, PoolPerHead, DefaultRules(SpaceTypePool).PoolStrategy)
}

func TestPricingRules_Level(t *testing.T) {
	cabin := SpaceTypeCabin
	assert.Equal(t, "global", (&PricingRules{}).Level())
	assert.Equal(t, "space_type", (&PricingRules{SpaceType: &cabin}).Level())
	assert.Equal(t, "space", (&PricingRules{SpaceType: &cabin, SpaceID: ptr.Ptr(int64(3))}).Level())
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, SpaceTypePool.IsValid())
	assert.False(t, SpaceType("hotel").IsValid())
	assert.True(t, SpaceTypePavilion.IsLodging())
	assert.False(t, SpaceTypePool.IsLodging())
	assert.True(t, BillingPerNight.IsValid())
	assert.False(t, BillingMode("hourly").IsValid())
	assert.False(t, UsageCategory("guest").IsValid())
	assert.False(t, UsageThirdParty.IsMember())
	assert.False(t, DayCountConvention("").IsValid())
	assert.False(t, PoolStrategy("free").IsValid())
}
