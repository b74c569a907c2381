package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/types"
)

// UsageCategory категория использования резерва
type UsageCategory string

const (
	UsagePersonal     UsageCategory = "personal_use"  // socio asiste
	UsageDirectCharge UsageCategory = "direct_charge" // socio reserva, asiste un responsable
	UsageThirdParty   UsageCategory = "third_party"   // externo
)

// IsValid returns true for a known usage category
func (c UsageCategory) IsValid() bool {
	switch c {
	case UsagePersonal, UsageDirectCharge, UsageThirdParty:
		return true
	}
	return false
}

// IsMember returns true if the category is billed at member (socio) rates
func (c UsageCategory) IsMember() bool {
	return c == UsagePersonal || c == UsageDirectCharge
}

// PartyComposition состав группы
type PartyComposition struct {
	Adults    int
	Minors    int
	PoolUsers int // используется, только если список invitados пуст
}

// Guest именованный invitado
type Guest struct {
	Name     string
	Rut      string
	Age      int
	UsesPool bool
}

// ReservationDraft незавершенная бронь, которую заполняет форма.
// Не является источником истины - backend пересчитывает всё при создании резерва.
type ReservationDraft struct {
	ID              uuid.UUID
	SpaceID         int64
	StartDate       types.Date
	EndDate         types.Date
	UsageCategory   UsageCategory
	Party           PartyComposition
	Guests          []Guest
	ResponsibleName *string // обязателен для direct_charge на стороне backend
	UpdatedAt       time.Time
}

// TotalAttendees returns adults + minors
func (d *ReservationDraft) TotalAttendees() int {
	return d.Party.Adults + d.Party.Minors
}

// PoolHeadcount количество пользователей piscina.
// Если список invitados не пуст, считаются отмеченные в нём гости,
// отдельно введенное Party.PoolUsers игнорируется.
func (d *ReservationDraft) PoolHeadcount() int {
	if len(d.Guests) == 0 {
		return d.Party.PoolUsers
	}
	count := 0
	for _, g := range d.Guests {
		if g.UsesPool {
			count++
		}
	}
	return count
}
