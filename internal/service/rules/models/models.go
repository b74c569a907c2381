package models

import (
	"time"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

// LevelDefault уровень правил, взятых из конфигурации сервиса
const LevelDefault = "default"

// Request модели

// UpsertRulesRequest запрос на создание или замену правил
// SpaceType и SpaceID = nil означают глобальные правила
type UpsertRulesRequest struct {
	UserID               string  `json:"userId"`
	SpaceType            *string `json:"spaceType,omitempty"`
	SpaceID              *int64  `json:"spaceId,omitempty"`
	MinimumStayDays      int     `json:"minimumStayDays"`
	DayCount             string  `json:"dayCount"`
	PoolStrategy         string  `json:"poolStrategy"`
	MemberFreePoolGuests int     `json:"memberFreePoolGuests"`
	GuestMinBillableAge  int     `json:"guestMinBillableAge"`
}

// Response модели

// RulesResponse ответ с данными правил
type RulesResponse struct {
	ID                   int64      `json:"id,omitempty"`
	Level                string     `json:"level"`
	SpaceType            *string    `json:"spaceType,omitempty"`
	SpaceID              *int64     `json:"spaceId,omitempty"`
	MinimumStayDays      int        `json:"minimumStayDays"`
	DayCount             string     `json:"dayCount"`
	PoolStrategy         string     `json:"poolStrategy"`
	MemberFreePoolGuests int        `json:"memberFreePoolGuests"`
	GuestMinBillableAge  int        `json:"guestMinBillableAge"`
	CreatedAt            *time.Time `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

// RulesListResponse ответ со списком правил
type RulesListResponse struct {
	Rules []RulesResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRules конвертирует domain модель в DTO
func FromDomainRules(r *domain.PricingRules) *RulesResponse {
	if r == nil {
		return nil
	}

	resp := &RulesResponse{
		ID:                   r.ID,
		Level:                r.Level(),
		SpaceID:              r.SpaceID,
		MinimumStayDays:      r.MinimumStayDays,
		DayCount:             string(r.DayCount),
		PoolStrategy:         string(r.PoolStrategy),
		MemberFreePoolGuests: r.MemberFreePoolGuests,
		GuestMinBillableAge:  r.GuestMinBillableAge,
	}
	if r.SpaceType != nil {
		t := string(*r.SpaceType)
		resp.SpaceType = &t
	}
	// ID = 0 - правила из конфигурации, в БД их нет
	if r.ID == 0 {
		resp.Level = LevelDefault
		return resp
	}
	resp.CreatedAt = &r.CreatedAt
	resp.UpdatedAt = &r.UpdatedAt
	return resp
}

// FromDomainRulesList конвертирует список domain моделей в DTO
func FromDomainRulesList(list []*domain.PricingRules) *RulesListResponse {
	resp := &RulesListResponse{
		Rules: make([]RulesResponse, 0, len(list)),
	}
	for _, r := range list {
		if rr := FromDomainRules(r); rr != nil {
			resp.Rules = append(resp.Rules, *rr)
		}
	}
	return resp
}

// ToDomainRules конвертирует UpsertRulesRequest в domain модель
func (r *UpsertRulesRequest) ToDomainRules() *domain.PricingRules {
	rules := &domain.PricingRules{
		SpaceID:              r.SpaceID,
		MinimumStayDays:      r.MinimumStayDays,
		DayCount:             domain.DayCountConvention(r.DayCount),
		PoolStrategy:         domain.PoolStrategy(r.PoolStrategy),
		MemberFreePoolGuests: r.MemberFreePoolGuests,
		GuestMinBillableAge:  r.GuestMinBillableAge,
	}
	if r.SpaceType != nil {
		t := domain.SpaceType(*r.SpaceType)
		rules.SpaceType = &t
	}
	return rules
}
