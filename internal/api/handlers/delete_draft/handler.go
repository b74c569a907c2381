package delete_draft

import (
	"errors"
	"net/http"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/middleware"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts"
)

const (
	msgInvalidSpaceID = "ID de espacio inválido"
	msgNotFound       = "no hay borrador guardado"
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

// Handle DELETE /api/v1/drafts/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	spaceID, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("DELETE /drafts/{spaceId} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, spaceID); err != nil {
		if errors.Is(err, drafts.ErrDraftNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /drafts/{spaceId} - Failed to delete draft: user_id=%s, space_id=%d, error=%v", userID, spaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /drafts/{spaceId} - Draft deleted: user_id=%s, space_id=%d", userID, spaceID)
	handlers.RespondNoContent(w)
}
