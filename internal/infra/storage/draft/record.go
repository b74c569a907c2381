package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/types"
)

// record формат хранения черновика (JSON)
type record struct {
	ID              uuid.UUID     `json:"id"`
	SpaceID         int64         `json:"space_id"`
	StartDate       types.Date    `json:"start_date"`
	EndDate         types.Date    `json:"end_date"`
	UsageCategory   string        `json:"usage_category"`
	Adults          int           `json:"adults"`
	Minors          int           `json:"minors"`
	PoolUsers       int           `json:"pool_users"`
	Guests          []guestRecord `json:"guests,omitempty"`
	ResponsibleName *string       `json:"responsible_name,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type guestRecord struct {
	Name     string `json:"name"`
	Rut      string `json:"rut,omitempty"`
	Age      int    `json:"age"`
	UsesPool bool   `json:"uses_pool"`
}

func key(ownerID string, spaceID int64) string {
	return fmt.Sprintf("%s:%d", ownerID, spaceID)
}

func encode(d *domain.ReservationDraft) ([]byte, error) {
	r := record{
		ID:              d.ID,
		SpaceID:         d.SpaceID,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		UsageCategory:   string(d.UsageCategory),
		Adults:          d.Party.Adults,
		Minors:          d.Party.Minors,
		PoolUsers:       d.Party.PoolUsers,
		ResponsibleName: d.ResponsibleName,
		UpdatedAt:       d.UpdatedAt,
	}
	for _, g := range d.Guests {
		r.Guests = append(r.Guests, guestRecord(g))
	}

	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) (*domain.ReservationDraft, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	d := &domain.ReservationDraft{
		ID:            r.ID,
		SpaceID:       r.SpaceID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		UsageCategory: domain.UsageCategory(r.UsageCategory),
		Party: domain.PartyComposition{
			Adults:    r.Adults,
			Minors:    r.Minors,
			PoolUsers: r.PoolUsers,
		},
		ResponsibleName: r.ResponsibleName,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, g := range r.Guests {
		d.Guests = append(d.Guests, domain.Guest(g))
	}
	return d, nil
}
