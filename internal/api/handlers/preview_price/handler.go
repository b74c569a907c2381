package preview_price

import (
	"errors"
	"net/http"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/middleware"
	previewPrice "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/preview_price"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidFields      = "datos de la reserva inválidos"
	msgInvalidSpace       = "datos del espacio inválidos"
)

type Handler struct {
	useCase PreviewPriceUseCase
	logger  Logger
}

func NewHandler(useCase PreviewPriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes/preview
// Только для администраторов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields, err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /quotes/preview - Validation failed: user_id=%s, fields=%v", userID, fields)
		handlers.RespondValidationError(w, msgInvalidFields, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /quotes/preview - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpace)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, previewPrice.ErrInvalidInput) {
			h.logger.Warn("POST /quotes/preview - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSpace)
			return
		}
		h.logger.Error("POST /quotes/preview - Failed to preview price: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /quotes/preview - Preview computed: user_id=%s, priced=%t", userID, result.Priced)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
