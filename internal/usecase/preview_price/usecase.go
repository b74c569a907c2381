package preview_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/pricing"
)

// UseCase предварительный расчет для ручного резерва администратором.
// Каталог не вызывается: тарифы приходят в запросе.
type UseCase struct {
	rulesService RulesService
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rulesService RulesService, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		rulesService: rulesService,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет предварительный расчет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PreviewPrice: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("PreviewPrice: user=%s, type=%s, space=%d", req.UserID, req.Profile.Type, req.Profile.SpaceID)

	var spaceID *int64
	if req.Profile.SpaceID > 0 {
		id := req.Profile.SpaceID
		spaceID = &id
	}

	rules, err := uc.rulesService.GetWithHierarchy(ctx, spaceID, req.Profile.Type)
	if err != nil {
		uc.logger.Error("PreviewPrice: failed to get rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	resp := &Response{RulesLevel: "default"}
	if rules.ID != 0 {
		resp.RulesLevel = rules.Level()
	}

	draft := *req.Draft
	draft.SpaceID = req.Profile.SpaceID

	breakdown, err := pricing.Calculate(req.Profile, &draft, *rules)
	if err != nil {
		var invalidErr *pricing.InvalidError
		if !errors.As(err, &invalidErr) {
			uc.logger.Error("PreviewPrice: calculator error: %v", err)
			return nil, fmt.Errorf("%w: calculate: %v", ErrInternal, err)
		}

		resp.Reason = pricing.ReasonOf(err)
		resp.Message = pricing.UserMessage(resp.Reason)
		resp.Detail = invalidErr.Detail
		uc.metrics.ObserveQuote(string(req.Profile.Type), string(resp.Reason), 0)
		return resp, nil
	}

	uc.metrics.ObserveQuote(string(req.Profile.Type), "priced", breakdown.Total)

	resp.Priced = true
	resp.Breakdown = breakdown
	return resp, nil
}
