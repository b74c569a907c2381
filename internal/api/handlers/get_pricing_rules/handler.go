package get_pricing_rules

import (
	"errors"
	"net/http"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules"
)

const (
	msgInvalidSpaceID = "ID de espacio inválido"
	msgSpaceNotFound  = "espacio no encontrado"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/pricing-rules
// Публичный endpoint - форма показывает минимальный срок и квоту piscina до расчета
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/pricing-rules - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	result, err := h.service.GetEffective(r.Context(), spaceID)
	if err != nil {
		if errors.Is(err, rules.ErrSpaceNotFound) {
			h.logger.Warn("GET /spaces/{id}/pricing-rules - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)
			return
		}
		h.logger.Error("GET /spaces/{id}/pricing-rules - Failed to get rules: space_id=%d, error=%v", spaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spaces/{id}/pricing-rules - Rules retrieved: space_id=%d, level=%s", spaceID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
