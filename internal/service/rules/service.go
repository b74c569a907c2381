package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	rulesRepo "github.com/manuelContrerasDev/enap-reservas-sub001/internal/infra/storage/rules"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/integrations/catalogservice"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules/models"
)

// Service сервис для работы с правилами расчета стоимости
type Service struct {
	rulesRepo     RulesRepository
	catalogClient CatalogClient
	defaults      Defaults
	txManager     TxManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(
	rulesRepo RulesRepository,
	catalogClient CatalogClient,
	defaults Defaults,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		rulesRepo:     rulesRepo,
		catalogClient: catalogClient,
		defaults:      defaults,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetWithHierarchy получает правила с учетом иерархии приоритетов
// Используется при расчете стоимости
// Приоритет: space > space_type > global > значения из конфигурации
func (s *Service) GetWithHierarchy(ctx context.Context, spaceID *int64, spaceType domain.SpaceType) (*domain.PricingRules, error) {
	rules, err := s.rulesRepo.GetRulesWithHierarchy(ctx, spaceID, spaceType)
	if err != nil {
		if errors.Is(err, rulesRepo.ErrRulesNotFound) {
			defaults := s.defaults.Rules(spaceType)
			return &defaults, nil
		}
		s.logger.Error("GetWithHierarchy: repository error for space=%v type=%s: %v", spaceID, spaceType, err)
		return nil, fmt.Errorf("%w: GetWithHierarchy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWithHierarchy: rules id=%d (level: %s) for space=%v type=%s",
		rules.ID, rules.Level(), spaceID, spaceType)
	return rules, nil
}

// GetEffective получает действующие правила для пространства из каталога
// Публичный метод - форма показывает минимальный срок и бесплатную квоту piscina
func (s *Service) GetEffective(ctx context.Context, spaceID int64) (*models.RulesResponse, error) {
	s.logger.Info("GetEffective: fetching rules for space=%d", spaceID)

	profile, err := s.getSpace(ctx, "GetEffective", spaceID)
	if err != nil {
		return nil, err
	}

	rules, err := s.GetWithHierarchy(ctx, &spaceID, profile.Type)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainRules(rules)
	// для правил по умолчанию показываем, к чему они применены
	if resp.Level == models.LevelDefault {
		t := string(profile.Type)
		resp.SpaceType = &t
		resp.SpaceID = &spaceID
	}
	return resp, nil
}

// List получает все настроенные правила
// Доступно только администраторам
func (s *Service) List(ctx context.Context) (*models.RulesListResponse, error) {
	s.logger.Info("List: fetching all pricing rules")

	list, err := s.rulesRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rules", len(list))
	return models.FromDomainRulesList(list), nil
}

// Upsert создает правила для ключа (space_type, space_id) или заменяет существующие
// Доступно только администраторам
// Возвращает created = true, если правила созданы
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRulesRequest) (*models.RulesResponse, bool, error) {
	s.logger.Info("Upsert: saving rules for type=%v, space=%v by user=%s", req.SpaceType, req.SpaceID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateRules(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, false, err
	}

	rules := req.ToDomainRules()

	// 2. Для конкретного пространства проверяем его существование и тип
	if rules.SpaceID != nil {
		profile, err := s.getSpace(ctx, "Upsert", *rules.SpaceID)
		if err != nil {
			return nil, false, err
		}
		if rules.SpaceType == nil {
			t := profile.Type
			rules.SpaceType = &t
		} else if *rules.SpaceType != profile.Type {
			s.logger.Warn("Upsert: space id=%d is %s, request says %s", *rules.SpaceID, profile.Type, *rules.SpaceType)
			return nil, false, fmt.Errorf("%w: space %d is of type %s", ErrInvalidInput, *rules.SpaceID, profile.Type)
		}
	}

	// 3. Создаем или обновляем в одной транзакции
	var (
		saved   *domain.PricingRules
		created bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.rulesRepo.GetByKey(ctx, rules.SpaceType, rules.SpaceID)
		if err != nil && !errors.Is(err, rulesRepo.ErrRulesNotFound) {
			return err
		}

		if existing == nil {
			saved, err = s.rulesRepo.Create(ctx, rules)
			created = true
			return err
		}

		saved, err = s.rulesRepo.Update(ctx, existing.ID, rules)
		return err
	})
	if err != nil {
		if errors.Is(err, rulesRepo.ErrDuplicateRules) {
			s.logger.Warn("Upsert: concurrent create for type=%v, space=%v", rules.SpaceType, rules.SpaceID)
			return nil, false, ErrRulesAlreadyExists
		}
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, false, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved rules id=%d (level: %s, created: %t)", saved.ID, saved.Level(), created)
	return models.FromDomainRules(saved), created, nil
}

// Delete удаляет правила по ID
// Доступно только администраторам
// После удаления глобальных правил расчет использует значения из конфигурации
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting rules id=%d", id)

	var level string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.rulesRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		level = existing.Level()
		return s.rulesRepo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, rulesRepo.ErrRulesNotFound) {
			s.logger.Warn("Delete: rules id=%d not found", id)
			return ErrRulesNotFound
		}
		s.logger.Error("Delete: repository error for rules id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted rules id=%d (level: %s)", id, level)
	return nil
}

// Вспомогательные методы

func (s *Service) getSpace(ctx context.Context, method string, spaceID int64) (*domain.SpaceTariffProfile, error) {
	profile, err := s.catalogClient.GetSpace(ctx, spaceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrSpaceNotFound) {
			s.logger.Warn("%s: space id=%d not found", method, spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("%s: failed to get space id=%d: %v", method, spaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}
	return profile, nil
}

// validateRules валидирует параметры правил
func (s *Service) validateRules(req *models.UpsertRulesRequest) error {
	if req.SpaceType != nil && !domain.SpaceType(*req.SpaceType).IsValid() {
		return fmt.Errorf("%w: unknown spaceType %q", ErrInvalidInput, *req.SpaceType)
	}

	if req.SpaceID != nil && *req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}

	if req.MinimumStayDays < domain.MinMinimumStayDays || req.MinimumStayDays > domain.MaxMinimumStayDays {
		return fmt.Errorf("%w: minimumStayDays must be between %d and %d",
			ErrInvalidInput, domain.MinMinimumStayDays, domain.MaxMinimumStayDays)
	}

	if !domain.DayCountConvention(req.DayCount).IsValid() {
		return fmt.Errorf("%w: dayCount must be inclusive or exclusive", ErrInvalidInput)
	}

	if !domain.PoolStrategy(req.PoolStrategy).IsValid() {
		return fmt.Errorf("%w: poolStrategy must be per_head or flat_base", ErrInvalidInput)
	}

	if req.MemberFreePoolGuests < domain.MinFreePoolGuests || req.MemberFreePoolGuests > domain.MaxFreePoolGuests {
		return fmt.Errorf("%w: memberFreePoolGuests must be between %d and %d",
			ErrInvalidInput, domain.MinFreePoolGuests, domain.MaxFreePoolGuests)
	}

	if req.GuestMinBillableAge < domain.MinGuestBillableAge || req.GuestMinBillableAge > domain.MaxGuestBillableAge {
		return fmt.Errorf("%w: guestMinBillableAge must be between %d and %d",
			ErrInvalidInput, domain.MinGuestBillableAge, domain.MaxGuestBillableAge)
	}

	return nil
}
