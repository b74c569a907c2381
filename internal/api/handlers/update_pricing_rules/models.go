package update_pricing_rules

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules/models"
)

// UpdateRulesRequest HTTP request model
// Без spaceType и spaceId - глобальные правила
type UpdateRulesRequest struct {
	SpaceType            *string `json:"spaceType,omitempty" validate:"omitempty,oneof=cabin pavilion pool"`
	SpaceID              *int64  `json:"spaceId,omitempty" validate:"omitempty,gt=0"`
	MinimumStayDays      int     `json:"minimumStayDays" validate:"gte=1,lte=60"`
	DayCount             string  `json:"dayCount" validate:"required,oneof=inclusive exclusive"`
	PoolStrategy         string  `json:"poolStrategy" validate:"required,oneof=per_head flat_base"`
	MemberFreePoolGuests *int    `json:"memberFreePoolGuests" validate:"required,gte=0,lte=50"`
	GuestMinBillableAge  *int    `json:"guestMinBillableAge" validate:"required,gte=0,lte=120"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRulesRequest) ToServiceRequest(userID string) *models.UpsertRulesRequest {
	return &models.UpsertRulesRequest{
		UserID:               userID,
		SpaceType:            r.SpaceType,
		SpaceID:              r.SpaceID,
		MinimumStayDays:      r.MinimumStayDays,
		DayCount:             r.DayCount,
		PoolStrategy:         r.PoolStrategy,
		MemberFreePoolGuests: *r.MemberFreePoolGuests,
		GuestMinBillableAge:  *r.GuestMinBillableAge,
	}
}
