package update_pricing_rules

import (
	"errors"
	"net/http"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/middleware"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidFields      = "reglas de cálculo inválidas"
	msgSpaceNotFound      = "espacio no encontrado"
	msgConflict           = "las reglas fueron modificadas en paralelo, intente nuevamente"
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

// Handle PUT /api/v1/pricing-rules
// Создает правила для ключа (spaceType, spaceId) или заменяет существующие
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields, err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /pricing-rules - Validation failed: user_id=%s, fields=%v", userID, fields)
		handlers.RespondValidationError(w, msgInvalidFields, fields)
		return
	}

	result, created, err := h.service.Upsert(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /pricing-rules - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, rules.ErrSpaceNotFound):
			h.logger.Warn("PUT /pricing-rules - Space not found: space_id=%v", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, rules.ErrRulesAlreadyExists):
			h.logger.Warn("PUT /pricing-rules - Concurrent create: user_id=%s", userID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PUT /pricing-rules - Failed to save rules: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.logger.Info("PUT /pricing-rules - Rules saved: rules_id=%d, level=%s, user_id=%s", result.ID, result.Level, userID)
	handlers.RespondJSON(w, status, result)
}
