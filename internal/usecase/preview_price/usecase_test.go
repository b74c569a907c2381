package preview_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/pricing"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/logger"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/metrics"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/ptr"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/types"
)

type mockRules struct {
	mock.Mock
}

func (m *mockRules) GetWithHierarchy(ctx context.Context, spaceID *int64, spaceType domain.SpaceType) (*domain.PricingRules, error) {
	args := m.Called(ctx, spaceID, spaceType)
	res, _ := args.Get(0).(*domain.PricingRules)
	return res, args.Error(1)
}

func poolProfile() *domain.SpaceTariffProfile {
	return &domain.SpaceTariffProfile{
		Type:              domain.SpaceTypePool,
		BillingMode:       domain.BillingPerPerson,
		BaseCapacity:      10,
		MemberBaseRate:    ptr.Ptr(int64(20000)),
		NonMemberBaseRate: ptr.Ptr(int64(30000)),
		MemberPoolRate:    ptr.Ptr(int64(2500)),
		NonMemberPoolRate: ptr.Ptr(int64(4000)),
	}
}

func poolDraft(adults int) *domain.ReservationDraft {
	return &domain.ReservationDraft{
		StartDate:     types.MustParseDate("2026-01-15"),
		EndDate:       types.MustParseDate("2026-01-15"),
		UsageCategory: domain.UsageThirdParty,
		Party:         domain.PartyComposition{Adults: adults},
	}
}

func TestExecute_NewSpaceUsesTypeRules(t *testing.T) {
	ctx := context.Background()
	rules := &mockRules{}

	flat := domain.DefaultRules(domain.SpaceTypePool)
	flat.ID = 2
	flat.SpaceType = ptr.Ptr(domain.SpaceTypePool)
	flat.PoolStrategy = domain.PoolFlatBase
	rules.On("GetWithHierarchy", ctx, (*int64)(nil), domain.SpaceTypePool).Return(&flat, nil)

	uc := NewUseCase(rules, (*metrics.Metrics)(nil), logger.Nop())
	resp, err := uc.Execute(ctx, &Request{UserID: "admin", Profile: poolProfile(), Draft: poolDraft(12)})

	require.NoError(t, err)
	assert.True(t, resp.Priced)
	assert.Equal(t, "space_type", resp.RulesLevel)
	// 30000 базовая + 2 человека сверх 10 по 4000
	assert.Equal(t, int64(38000), resp.Breakdown.Total)
	rules.AssertExpectations(t)
}

func TestExecute_ExistingSpacePassesID(t *testing.T) {
	ctx := context.Background()
	rules := &mockRules{}

	defaults := domain.DefaultRules(domain.SpaceTypePool)
	rules.On("GetWithHierarchy", ctx, ptr.Ptr(int64(3)), domain.SpaceTypePool).Return(&defaults, nil)

	profile := poolProfile()
	profile.SpaceID = 3

	uc := NewUseCase(rules, (*metrics.Metrics)(nil), logger.Nop())
	resp, err := uc.Execute(ctx, &Request{Profile: profile, Draft: poolDraft(3)})

	require.NoError(t, err)
	assert.True(t, resp.Priced)
	assert.Equal(t, "default", resp.RulesLevel)
	assert.Equal(t, int64(12000), resp.Breakdown.Total)
}

func TestExecute_MissingRate(t *testing.T) {
	ctx := context.Background()
	rules := &mockRules{}

	defaults := domain.DefaultRules(domain.SpaceTypePool)
	rules.On("GetWithHierarchy", ctx, mock.Anything, mock.Anything).Return(&defaults, nil)

	profile := poolProfile()
	profile.NonMemberPoolRate = nil

	uc := NewUseCase(rules, (*metrics.Metrics)(nil), logger.Nop())
	resp, err := uc.Execute(ctx, &Request{Profile: profile, Draft: poolDraft(3)})

	require.NoError(t, err)
	assert.False(t, resp.Priced)
	assert.Equal(t, pricing.ReasonMissingTariffField, resp.Reason)
	assert.Equal(t, "NonMemberPoolRate is not set", resp.Detail)
	assert.Nil(t, resp.Breakdown)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := NewUseCase(&mockRules{}, (*metrics.Metrics)(nil), logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Draft: poolDraft(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	profile := poolProfile()
	profile.Type = "sauna"
	_, err = uc.Execute(context.Background(), &Request{Profile: profile, Draft: poolDraft(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Profile: poolProfile()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
