package save_draft

import (
	"errors"
	"net/http"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/middleware"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
)

const (
	msgInvalidSpaceID     = "ID de espacio inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidFields      = "datos del borrador inválidos"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/drafts/{spaceId}
// Автосохранение формы: черновик пользователя для пространства заменяется целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	spaceID, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("PUT /drafts/{spaceId} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var payload models.DraftPayload
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn("PUT /drafts/{spaceId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields, err := handlers.Validate(&payload); err != nil {
		h.logger.Warn("PUT /drafts/{spaceId} - Validation failed: user_id=%s, fields=%v", userID, fields)
		handlers.RespondValidationError(w, msgInvalidFields, fields)
		return
	}

	result, err := h.service.Save(r.Context(), &models.SaveDraftRequest{
		UserID:  userID,
		SpaceID: spaceID,
		Draft:   payload,
	})
	if err != nil {
		if errors.Is(err, drafts.ErrInvalidInput) {
			h.logger.Warn("PUT /drafts/{spaceId} - Invalid draft: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)
			return
		}
		h.logger.Error("PUT /drafts/{spaceId} - Failed to save draft: user_id=%s, space_id=%d, error=%v", userID, spaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /drafts/{spaceId} - Draft saved: draft_id=%s, user_id=%s, space_id=%d", result.ID, userID, spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
