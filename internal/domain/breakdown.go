package domain

// PriceBreakdown результат расчета. Только для отображения, нигде не сохраняется.
type PriceBreakdown struct {
	Days        int
	Member      bool
	BillingMode BillingMode

	BaseAmount int64

	ExtraGuests      int // сверх базовой вместимости, оплачиваются за каждый день
	ExtraGuestAmount int64

	BillableGuests int // invitados с возрастом >= порога, фиксированная плата за весь срок
	GuestAmount    int64

	PoolGuests        int
	ChargedPoolGuests int
	PoolAmount        int64

	Total int64
}

// Sum returns the sum of all components
func (b *PriceBreakdown) Sum() int64 {
	return b.BaseAmount + b.ExtraGuestAmount + b.GuestAmount + b.PoolAmount
}
