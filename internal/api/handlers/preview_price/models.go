package preview_price

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/integrations/catalogservice"
	draftsModels "github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
	previewPrice "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/preview_price"
)

// PreviewRequest HTTP request model
// Тарифы в том же формате, что и в каталоге (форма ручного резерва администратора)
type PreviewRequest struct {
	Space catalogservice.Space      `json:"espacio"`
	Draft draftsModels.DraftPayload `json:"reserva"`
}

// PreviewResponse HTTP response model
type PreviewResponse struct {
	Status     string                      `json:"status"`
	Reason     string                      `json:"reason,omitempty"`
	Message    string                      `json:"message,omitempty"`
	Detail     string                      `json:"detail,omitempty"`
	RulesLevel string                      `json:"nivelReglas"`
	Breakdown  *handlers.BreakdownResponse `json:"desglose,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewRequest) ToUseCaseRequest(userID string) (*previewPrice.Request, error) {
	profile, err := r.Space.ToDomain()
	if err != nil {
		return nil, err
	}
	draft, err := r.Draft.ToDomainDraft(profile.SpaceID)
	if err != nil {
		return nil, err
	}
	return &previewPrice.Request{
		UserID:  userID,
		Profile: profile,
		Draft:   draft,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewPrice.Response) *PreviewResponse {
	status := "invalid"
	if resp.Priced {
		status = "priced"
	}
	return &PreviewResponse{
		Status:     status,
		Reason:     string(resp.Reason),
		Message:    resp.Message,
		Detail:     resp.Detail,
		RulesLevel: resp.RulesLevel,
		Breakdown:  handlers.FromBreakdown(resp.Breakdown),
	}
}
