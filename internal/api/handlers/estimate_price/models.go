package estimate_price

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	draftsModels "github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
	estimatePrice "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/estimate_price"
)

// QuoteRequest HTTP request model: тот же payload, что и при создании резерва
type QuoteRequest = draftsModels.DraftPayload

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Status    string                      `json:"status"` // priced | invalid
	Reason    string                      `json:"reason,omitempty"`
	Message   string                      `json:"message,omitempty"`
	Detail    string                      `json:"detail,omitempty"`
	Space     SpaceResponse               `json:"espacio"`
	Rules     RulesResponse               `json:"reglas"`
	Breakdown *handlers.BreakdownResponse `json:"desglose,omitempty"`
}

type SpaceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
	Type string `json:"tipo"`
}

type RulesResponse struct {
	Level                string `json:"nivel"`
	MinimumStayDays      int    `json:"minimoDias"`
	DayCount             string `json:"conteoDias"`
	MemberFreePoolGuests int    `json:"piscinaGratisSocio"`
	GuestMinBillableAge  int    `json:"edadMinimaCobro"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func ToUseCaseRequest(userID string, spaceID int64, req *QuoteRequest) (*estimatePrice.Request, error) {
	draft, err := req.ToDomainDraft(spaceID)
	if err != nil {
		return nil, err
	}
	return &estimatePrice.Request{
		UserID:  userID,
		SpaceID: spaceID,
		Draft:   draft,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *estimatePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		Status:  string(resp.Status),
		Reason:  string(resp.Reason),
		Message: resp.Message,
		Detail:  resp.Detail,
		Space: SpaceResponse{
			ID:   resp.SpaceID,
			Name: resp.SpaceName,
			Type: string(resp.SpaceType),
		},
		Rules: RulesResponse{
			Level:                resp.RulesLevel,
			MinimumStayDays:      resp.Rules.MinimumStayDays,
			DayCount:             string(resp.Rules.DayCount),
			MemberFreePoolGuests: resp.Rules.MemberFreePoolGuests,
			GuestMinBillableAge:  resp.Rules.GuestMinBillableAge,
		},
		Breakdown: handlers.FromBreakdown(resp.Breakdown),
	}
}
