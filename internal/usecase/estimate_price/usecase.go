package estimate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/integrations/catalogservice"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/pricing"
)

// UseCase use case для расчета предварительной стоимости резерва
type UseCase struct {
	catalogClient CatalogClient
	rulesService  RulesService
	metrics       MetricsRecorder
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogClient CatalogClient,
	rulesService RulesService,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		rulesService:  rulesService,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет расчет
// Невозможность расчета (даты, вместимость, тарифы) - это не ошибка, а Response со Status = invalid
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EstimatePrice: user=%s, space=%d", req.UserID, req.SpaceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EstimatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тарифы пространства
	profile, err := uc.catalogClient.GetSpace(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrSpaceNotFound) {
			uc.logger.Warn("EstimatePrice: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("EstimatePrice: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 3. Правила с учетом иерархии
	rules, err := uc.rulesService.GetWithHierarchy(ctx, &req.SpaceID, profile.Type)
	if err != nil {
		uc.logger.Error("EstimatePrice: failed to get rules for space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	resp := &Response{
		SpaceID:    profile.SpaceID,
		SpaceName:  profile.Name,
		SpaceType:  profile.Type,
		RulesLevel: rulesLevel(rules),
		Rules:      *rules,
	}

	// 4. Расчет
	draft := *req.Draft
	draft.SpaceID = req.SpaceID

	breakdown, err := pricing.Calculate(profile, &draft, *rules)
	if err != nil {
		if !pricing.IsInvalid(err) {
			uc.logger.Error("EstimatePrice: calculator error for space id=%d: %v", req.SpaceID, err)
			return nil, fmt.Errorf("%w: calculate: %v", ErrInternal, err)
		}

		reason := pricing.ReasonOf(err)
		uc.logger.Info("EstimatePrice: space=%d not priceable: %v", req.SpaceID, err)
		uc.metrics.ObserveQuote(string(profile.Type), string(reason), 0)

		resp.Status = StatusInvalid
		resp.Reason = reason
		resp.Message = pricing.UserMessage(reason)
		resp.Detail = detailOf(err)
		return resp, nil
	}

	uc.metrics.ObserveQuote(string(profile.Type), string(StatusPriced), breakdown.Total)
	uc.logger.Info("EstimatePrice: space=%d, days=%d, total=%d (rules: %s)",
		req.SpaceID, breakdown.Days, breakdown.Total, resp.RulesLevel)

	resp.Status = StatusPriced
	resp.Breakdown = breakdown
	return resp, nil
}

func detailOf(err error) string {
	var invalidErr *pricing.InvalidError
	if errors.As(err, &invalidErr) {
		return invalidErr.Detail
	}
	return err.Error()
}
