package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	draftStore "github.com/manuelContrerasDev/enap-reservas-sub001/internal/infra/storage/draft"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
)

// Service сервис автосохранения черновиков резерва
type Service struct {
	store  DraftStore
	logger Logger
	now    func() time.Time
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(store DraftStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Save сохраняет черновик пользователя для пространства, заменяя предыдущий
// ID черновика сохраняется между автосохранениями
func (s *Service) Save(ctx context.Context, req *models.SaveDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("Save: saving draft for user=%s, space=%d", req.UserID, req.SpaceID)

	draft, err := req.Draft.ToDomainDraft(req.SpaceID)
	if err != nil {
		s.logger.Warn("Save: invalid draft for user=%s, space=%d: %v", req.UserID, req.SpaceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.store.Load(ctx, req.UserID, req.SpaceID)
	switch {
	case err == nil:
		draft.ID = existing.ID
	case errors.Is(err, draftStore.ErrDraftNotFound):
		draft.ID = uuid.New()
	default:
		s.logger.Error("Save: failed to load previous draft: %v", err)
		return nil, fmt.Errorf("%w: Save - store error: %v", ErrInternal, err)
	}
	draft.UpdatedAt = s.now().UTC()

	if err := s.store.Save(ctx, req.UserID, draft); err != nil {
		s.logger.Error("Save: store error for user=%s, space=%d: %v", req.UserID, req.SpaceID, err)
		return nil, fmt.Errorf("%w: Save - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully saved draft id=%s", draft.ID)
	return models.FromDomain(draft), nil
}

// Load получает черновик пользователя для пространства
func (s *Service) Load(ctx context.Context, userID string, spaceID int64) (*models.DraftResponse, error) {
	draft, err := s.store.Load(ctx, userID, spaceID)
	if err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		s.logger.Error("Load: store error for user=%s, space=%d: %v", userID, spaceID, err)
		return nil, fmt.Errorf("%w: Load - store error: %v", ErrInternal, err)
	}
	return models.FromDomain(draft), nil
}

// Delete удаляет черновик (после создания резерва или по кнопке "limpiar")
func (s *Service) Delete(ctx context.Context, userID string, spaceID int64) error {
	s.logger.Info("Delete: deleting draft for user=%s, space=%d", userID, spaceID)

	if err := s.store.Delete(ctx, userID, spaceID); err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			s.logger.Warn("Delete: draft for user=%s, space=%d not found", userID, spaceID)
			return ErrDraftNotFound
		}
		s.logger.Error("Delete: store error for user=%s, space=%d: %v", userID, spaceID, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}
	return nil
}
