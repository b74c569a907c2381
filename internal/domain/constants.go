package domain

// Default pricing rule values
const (
	DefaultDayCount             = DayCountInclusive
	DefaultPoolStrategy         = PoolPerHead
	DefaultMinimumStayDays      = 1
	DefaultCabinMinimumStayDays = 3
	DefaultMemberFreePoolGuests = 5
	DefaultGuestMinBillableAge  = 13
)

// Business validation constants
const (
	MinMinimumStayDays      = 1
	MaxMinimumStayDays      = 60
	MinFreePoolGuests       = 0
	MaxFreePoolGuests       = 50
	MinGuestBillableAge     = 0
	MaxGuestBillableAge     = 120
	MaxGuestsPerReservation = 200
	MaxGuestNameLength      = 120
	MaxPartySize            = 1000        // adultos, niños и piscina по отдельности
	MaxSpaceCapacity        = 10000       // capacidad и capacidadExtra
	MaxRateCLP              = 100_000_000 // любой тариф за день или за человека
	MaxStayDays             = 366
)

// DateFormat формат дат в API и в payload backend
const DateFormat = "2006-01-02" // YYYY-MM-DD
