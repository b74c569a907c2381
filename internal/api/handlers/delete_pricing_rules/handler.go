package delete_pricing_rules

import (
	"errors"
	"net/http"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules"
)

const (
	msgInvalidRulesID = "ID de reglas inválido"
	msgNotFound       = "reglas no encontradas"
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

// Handle DELETE /api/v1/pricing-rules/{rulesId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rulesID, err := handlers.PathInt64(r, "rulesId")
	if err != nil {
		h.logger.Warn("DELETE /pricing-rules/{id} - Invalid rules ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRulesID)
		return
	}

	if err := h.service.Delete(r.Context(), rulesID); err != nil {
		if errors.Is(err, rules.ErrRulesNotFound) {
			h.logger.Warn("DELETE /pricing-rules/{id} - Not found: rules_id=%d", rulesID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /pricing-rules/{id} - Failed to delete: rules_id=%d, error=%v", rulesID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /pricing-rules/{id} - Rules deleted: rules_id=%d", rulesID)
	handlers.RespondNoContent(w)
}
