package estimate_price

import (
	"errors"
	"net/http"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/middleware"
	estimatePrice "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/estimate_price"
)

const (
	msgInvalidSpaceID     = "ID de espacio inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidFields      = "datos de la reserva inválidos"
	msgSpaceNotFound      = "espacio no encontrado"
)

type Handler struct {
	useCase EstimatePriceUseCase
	logger  Logger
}

func NewHandler(useCase EstimatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/spaces/{spaceId}/quote
// Публичный endpoint. Невозможность расчета возвращается как 200 со status = invalid.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("POST /spaces/{id}/quote - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields, err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /spaces/{id}/quote - Validation failed: space_id=%d, fields=%v", spaceID, fields)
		handlers.RespondValidationError(w, msgInvalidFields, fields)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := ToUseCaseRequest(userID, spaceID, &req)
	if err != nil {
		h.logger.Warn("POST /spaces/{id}/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, estimatePrice.ErrSpaceNotFound):
			h.logger.Warn("POST /spaces/{id}/quote - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, estimatePrice.ErrInvalidInput):
			h.logger.Warn("POST /spaces/{id}/quote - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /spaces/{id}/quote - Failed to estimate price: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces/{id}/quote - Quote computed: space_id=%d, status=%s", spaceID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
